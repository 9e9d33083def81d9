package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ProfileService struct {
	profiles ports.ProfileRepo
	catalog  ports.CatalogRepo
	logger   logger.Logger
}

func NewProfileService(profiles ports.ProfileRepo, catalog ports.CatalogRepo, logger logger.Logger) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		catalog:  catalog,
		logger:   logger,
	}
}

func (s *ProfileService) CreateParent(ctx context.Context, input domain.CreateParentInput) (*domain.ParentProfile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := checkLocation(ctx, s.catalog, input.City, input.Neighborhood); err != nil {
		return nil, err
	}

	p := &domain.ParentProfile{
		ID:             uuid.New().String(),
		FullName:       strings.TrimSpace(input.FullName),
		Phone:          strings.TrimSpace(input.Phone),
		City:           strings.TrimSpace(input.City),
		Neighborhood:   strings.TrimSpace(input.Neighborhood),
		Address:        input.Address,
		ChildrenAges:   append([]int(nil), input.ChildrenAges...),
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.profiles.CreateParent(ctx, p); err != nil {
		return nil, fmt.Errorf("create parent: %w", err)
	}

	s.logger.Info("parent registered",
		logger.String("parent_id", p.ID),
		logger.String("city", p.City),
	)

	return p, nil
}

func (s *ProfileService) GetParent(ctx context.Context, id string) (*domain.ParentProfile, error) {
	return s.profiles.GetParent(ctx, id)
}

func (s *ProfileService) CreateBabysitter(ctx context.Context, input domain.CreateBabysitterInput) (*domain.BabysitterProfile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	areas := make([]string, 0, len(input.ServiceAreas))
	for _, a := range input.ServiceAreas {
		if a = strings.TrimSpace(a); a != "" {
			areas = append(areas, a)
		}
	}

	if err := checkLocation(ctx, s.catalog, input.City, append([]string{input.Neighborhood}, areas...)...); err != nil {
		return nil, err
	}
	if err := checkStyle(ctx, s.catalog, input.CommunityStyleID); err != nil {
		return nil, err
	}

	b := &domain.BabysitterProfile{
		ID:                       uuid.New().String(),
		FullName:                 strings.TrimSpace(input.FullName),
		Phone:                    strings.TrimSpace(input.Phone),
		Age:                      input.Age,
		City:                     strings.TrimSpace(input.City),
		Neighborhood:             strings.TrimSpace(input.Neighborhood),
		ServiceAreas:             areas,
		GuardianRequiredApproval: input.GuardianRequiredApproval,
		GuardianPhone:            strings.TrimSpace(input.GuardianPhone),
		GuardianTelegramChatID:   input.GuardianTelegramChatID,
		CommunityStyleID:         input.CommunityStyleID,
		TelegramChatID:           input.TelegramChatID,
		CreatedAt:                time.Now().UTC(),
	}

	if err := s.profiles.CreateBabysitter(ctx, b); err != nil {
		return nil, fmt.Errorf("create babysitter: %w", err)
	}

	s.logger.Info("babysitter registered",
		logger.String("babysitter_id", b.ID),
		logger.String("city", b.City),
		logger.Int("service_areas", len(b.ServiceAreas)),
	)

	return b, nil
}

func (s *ProfileService) GetBabysitter(ctx context.Context, id string) (*domain.BabysitterProfile, error) {
	return s.profiles.GetBabysitter(ctx, id)
}
