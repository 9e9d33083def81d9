package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/matching"
	"github.com/stpnv0/SitterMatch/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Matcher turns a request into pending candidates for every eligible
// babysitter.
type Matcher struct {
	profiles ports.ProfileRepo
	logger   logger.Logger
}

func NewMatcher(profiles ports.ProfileRepo, logger logger.Logger) *Matcher {
	return &Matcher{
		profiles: profiles,
		logger:   logger,
	}
}

func (m *Matcher) Match(ctx context.Context, parent *domain.ParentProfile, r *domain.Request) ([]*domain.Candidate, error) {
	if !parent.HasGeography() {
		return nil, fmt.Errorf("%w: parent profile has no city or neighborhood", domain.ErrValidation)
	}

	pool, err := m.profiles.ListBabysittersByCity(ctx, parent.City)
	if err != nil {
		return nil, fmt.Errorf("list babysitters: %w", err)
	}

	eligible := matching.Filter(parent, r, pool)
	now := time.Now().UTC()
	candidates := make([]*domain.Candidate, 0, len(eligible))
	for _, b := range eligible {
		candidates = append(candidates, domain.NewCandidate(uuid.New().String(), r.ID, b.ID, now))
	}

	if len(candidates) == 0 {
		m.logger.Info("no babysitters matched",
			logger.String("request_id", r.ID),
			logger.String("city", parent.City),
			logger.String("area", r.Area),
		)
	}

	return candidates, nil
}
