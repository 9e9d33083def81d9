package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ResponseService records babysitter and guardian decisions on candidates.
// It never changes the request's status.
type ResponseService struct {
	candidates ports.CandidateRepo
	requests   ports.RequestRepo
	profiles   ports.ProfileRepo
	events     ports.EventPublisher
	logger     logger.Logger
}

func NewResponseService(
	candidates ports.CandidateRepo,
	requests ports.RequestRepo,
	profiles ports.ProfileRepo,
	events ports.EventPublisher,
	logger logger.Logger,
) *ResponseService {
	return &ResponseService{
		candidates: candidates,
		requests:   requests,
		profiles:   profiles,
		events:     events,
		logger:     logger,
	}
}

func (s *ResponseService) Accept(ctx context.Context, candidateID string) (*domain.Candidate, error) {
	return s.respond(ctx, candidateID, func(c *domain.Candidate, at time.Time) (domain.ResponseChange, error) {
		b, err := s.profiles.GetBabysitter(ctx, c.BabysitterID)
		if err != nil {
			return domain.ResponseChange{}, fmt.Errorf("get babysitter: %w", err)
		}
		return c.Accept(b.GuardianRequiredApproval, at)
	})
}

func (s *ResponseService) Decline(ctx context.Context, candidateID string) (*domain.Candidate, error) {
	return s.respond(ctx, candidateID, func(c *domain.Candidate, at time.Time) (domain.ResponseChange, error) {
		return c.Decline(at)
	})
}

func (s *ResponseService) GuardianApprove(ctx context.Context, candidateID string) (*domain.Candidate, error) {
	return s.respond(ctx, candidateID, func(c *domain.Candidate, at time.Time) (domain.ResponseChange, error) {
		return c.GuardianApprove(at)
	})
}

func (s *ResponseService) GuardianDecline(ctx context.Context, candidateID string) (*domain.Candidate, error) {
	return s.respond(ctx, candidateID, func(c *domain.Candidate, at time.Time) (domain.ResponseChange, error) {
		return c.GuardianDecline(at)
	})
}

// PendingForBabysitter lists the offers a babysitter has not answered yet.
func (s *ResponseService) PendingForBabysitter(ctx context.Context, babysitterID string) ([]*domain.Candidate, error) {
	return s.candidates.ListPendingByBabysitter(ctx, babysitterID)
}

func (s *ResponseService) respond(
	ctx context.Context,
	candidateID string,
	decide func(c *domain.Candidate, at time.Time) (domain.ResponseChange, error),
) (*domain.Candidate, error) {
	c, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}

	req, err := s.requests.GetByID(ctx, c.RequestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if !req.Status.IsOpen() {
		return nil, req.StateError("respond to candidate " + c.ID)
	}

	ch, err := decide(c, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = s.candidates.UpdateResponse(ctx, ch); err != nil {
		return nil, fmt.Errorf("update response: %w", err)
	}
	c.ApplyResponse(ch)

	s.logger.Info("candidate responded",
		logger.String("candidate_id", c.ID),
		logger.String("request_id", c.RequestID),
		logger.String("from", string(ch.From)),
		logger.String("to", string(ch.To)),
	)

	eventType := domain.EventCandidateResponse
	if ch.To == domain.ResponseGuardianPending {
		eventType = domain.EventGuardianRequested
	}
	go s.events.Publish(context.WithoutCancel(ctx), candidateEvent(eventType, req.ParentID, c))

	return c, nil
}
