package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type CatalogService struct {
	catalog ports.CatalogRepo
	logger  logger.Logger
}

func NewCatalogService(catalog ports.CatalogRepo, logger logger.Logger) *CatalogService {
	return &CatalogService{
		catalog: catalog,
		logger:  logger,
	}
}

func (s *CatalogService) CreateCity(ctx context.Context, input domain.CreateCityInput) (*domain.City, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c := &domain.City{ID: uuid.New().String(), Name: strings.TrimSpace(input.Name)}
	hoods := make([]*domain.Neighborhood, 0, len(input.Neighborhoods))
	for _, n := range input.Neighborhoods {
		hoods = append(hoods, &domain.Neighborhood{
			ID:     uuid.New().String(),
			CityID: c.ID,
			Name:   strings.TrimSpace(n),
		})
	}

	if err := s.catalog.CreateCity(ctx, c, hoods); err != nil {
		return nil, fmt.Errorf("create city: %w", err)
	}

	s.logger.Info("city added",
		logger.String("city_id", c.ID),
		logger.String("name", c.Name),
		logger.Int("neighborhoods", len(hoods)),
	)

	return c, nil
}

func (s *CatalogService) ListCities(ctx context.Context) ([]*domain.City, error) {
	return s.catalog.ListCities(ctx)
}

func (s *CatalogService) GetCity(ctx context.Context, id string) (*domain.City, error) {
	return s.catalog.GetCity(ctx, id)
}

func (s *CatalogService) ListNeighborhoods(ctx context.Context, cityID string) ([]*domain.Neighborhood, error) {
	return s.catalog.ListNeighborhoods(ctx, cityID)
}

func (s *CatalogService) CreateCommunityStyle(ctx context.Context, input domain.CreateCommunityStyleInput) (*domain.CommunityStyle, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	st := &domain.CommunityStyle{
		ID:          uuid.New().String(),
		Label:       strings.TrimSpace(input.Label),
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.catalog.CreateCommunityStyle(ctx, st); err != nil {
		return nil, fmt.Errorf("create community style: %w", err)
	}

	s.logger.Info("community style added", logger.String("style_id", st.ID))

	return st, nil
}

func (s *CatalogService) ListCommunityStyles(ctx context.Context) ([]*domain.CommunityStyle, error) {
	return s.catalog.ListCommunityStyles(ctx)
}

// Seed adds the cities and styles that are not there yet. A city already
// present by name is left as is.
func (s *CatalogService) Seed(ctx context.Context, cities []domain.CreateCityInput, styles []domain.CreateCommunityStyleInput) error {
	for _, in := range cities {
		if _, err := s.CreateCity(ctx, in); err != nil && !errors.Is(err, domain.ErrCityExists) {
			return err
		}
	}

	existing, err := s.catalog.ListCommunityStyles(ctx)
	if err != nil {
		return fmt.Errorf("list community styles: %w", err)
	}
	have := make(map[string]struct{}, len(existing))
	for _, st := range existing {
		have[domain.CatalogKey(st.Label)] = struct{}{}
	}
	for _, in := range styles {
		if _, ok := have[domain.CatalogKey(in.Label)]; ok {
			continue
		}
		if _, err = s.CreateCommunityStyle(ctx, in); err != nil {
			return err
		}
	}
	return nil
}

// checkLocation rejects a city or any of the neighborhoods that the catalog
// does not list under that city.
func checkLocation(ctx context.Context, catalog ports.CatalogRepo, city string, hoods ...string) error {
	c, err := catalog.FindCity(ctx, city)
	if err != nil {
		if errors.Is(err, domain.ErrCityNotFound) {
			return fmt.Errorf("%w: unknown city %q", domain.ErrValidation, strings.TrimSpace(city))
		}
		return fmt.Errorf("find city: %w", err)
	}

	known, err := catalog.ListNeighborhoods(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("list neighborhoods: %w", err)
	}
	for _, n := range hoods {
		if !domain.HasNeighborhood(known, n) {
			return fmt.Errorf("%w: unknown neighborhood %q in %s", domain.ErrValidation, strings.TrimSpace(n), c.Name)
		}
	}
	return nil
}

// checkStyle accepts an empty id.
func checkStyle(ctx context.Context, catalog ports.CatalogRepo, id string) error {
	if strings.TrimSpace(id) == "" {
		return nil
	}
	if _, err := catalog.GetCommunityStyle(ctx, id); err != nil {
		if errors.Is(err, domain.ErrStyleNotFound) {
			return fmt.Errorf("%w: unknown community_style_id %q", domain.ErrValidation, id)
		}
		return fmt.Errorf("get community style: %w", err)
	}
	return nil
}
