package ports

import (
	"context"

	"github.com/stpnv0/SitterMatch/internal/domain"
)

type ProfileRepo interface {
	CreateParent(ctx context.Context, p *domain.ParentProfile) error
	GetParent(ctx context.Context, id string) (*domain.ParentProfile, error)
	CreateBabysitter(ctx context.Context, b *domain.BabysitterProfile) error
	GetBabysitter(ctx context.Context, id string) (*domain.BabysitterProfile, error)
	ListBabysittersByCity(ctx context.Context, city string) ([]*domain.BabysitterProfile, error)
	GetBabysitters(ctx context.Context, ids []string) (map[string]*domain.BabysitterProfile, error)
}
