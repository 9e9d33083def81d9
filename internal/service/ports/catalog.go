package ports

import (
	"context"

	"github.com/stpnv0/SitterMatch/internal/domain"
)

// CatalogRepo holds the reference data profiles and requests point at.
type CatalogRepo interface {
	CreateCity(ctx context.Context, c *domain.City, hoods []*domain.Neighborhood) error
	ListCities(ctx context.Context) ([]*domain.City, error)
	GetCity(ctx context.Context, id string) (*domain.City, error)
	// FindCity looks a city up by name, ignoring case and surrounding space.
	FindCity(ctx context.Context, name string) (*domain.City, error)
	ListNeighborhoods(ctx context.Context, cityID string) ([]*domain.Neighborhood, error)

	CreateCommunityStyle(ctx context.Context, s *domain.CommunityStyle) error
	ListCommunityStyles(ctx context.Context) ([]*domain.CommunityStyle, error)
	GetCommunityStyle(ctx context.Context, id string) (*domain.CommunityStyle, error)
}
