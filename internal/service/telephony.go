package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// responder is the part of ResponseService reachable from the IVR keypad.
type responder interface {
	Accept(ctx context.Context, candidateID string) (*domain.Candidate, error)
	Decline(ctx context.Context, candidateID string) (*domain.Candidate, error)
}

// TelephonyService tracks IVR calls placed for candidates. Call status is
// bookkeeping only; a babysitter's answer reaches the candidate through the
// responder, never by writing Response directly.
type TelephonyService struct {
	candidates ports.CandidateRepo
	requests   ports.RequestRepo
	responder  responder
	events     ports.EventPublisher
	logger     logger.Logger
}

func NewTelephonyService(
	candidates ports.CandidateRepo,
	requests ports.RequestRepo,
	responder responder,
	events ports.EventPublisher,
	logger logger.Logger,
) *TelephonyService {
	return &TelephonyService{
		candidates: candidates,
		requests:   requests,
		responder:  responder,
		events:     events,
		logger:     logger,
	}
}

func (s *TelephonyService) CallStatus(ctx context.Context, candidateID string) (*domain.Candidate, error) {
	return s.candidates.GetByID(ctx, candidateID)
}

// RetryCall resets a failed or unanswered call and queues a new one. Only
// candidates that have not answered yet are called again.
func (s *TelephonyService) RetryCall(ctx context.Context, candidateID string) (*domain.Candidate, error) {
	c, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	ch, err := c.RetryCall()
	if err != nil {
		return nil, err
	}

	req, err := s.requests.GetByID(ctx, c.RequestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if !req.Status.IsOpen() {
		return nil, req.StateError("call candidate " + c.ID)
	}

	if err = s.candidates.UpdateCall(ctx, ch); err != nil {
		return nil, fmt.Errorf("update call: %w", err)
	}
	c.ApplyCall(ch)

	s.logger.Info("call retry queued",
		logger.String("candidate_id", c.ID),
		logger.Int("attempts", c.CallAttempts),
	)

	go s.events.Publish(context.WithoutCancel(ctx), candidateEvent(domain.EventCallRequested, req.ParentID, c))

	return c, nil
}

// HandleWebhook applies one IVR callback.
func (s *TelephonyService) HandleWebhook(ctx context.Context, e domain.TelephonyEvent) (*domain.Candidate, error) {
	switch e.Type {
	case domain.DTMFReceived:
		return s.handleDTMF(ctx, e)
	case domain.CallAnswered, domain.RecordingReady:
		return s.candidates.GetByID(ctx, e.CandidateID)
	}

	c, err := s.candidates.GetByID(ctx, e.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}

	ch, err := c.CallProgress(e.Type)
	if err != nil {
		return nil, err
	}
	if err = s.candidates.UpdateCall(ctx, ch); err != nil {
		return nil, fmt.Errorf("update call: %w", err)
	}
	c.ApplyCall(ch)

	s.logger.Debug("call status updated",
		logger.String("candidate_id", c.ID),
		logger.String("call_id", e.CallID),
		logger.String("call_status", string(c.CallStatus)),
		logger.Duration("duration", time.Duration(e.DurationSeconds)*time.Second),
	)

	return c, nil
}

func (s *TelephonyService) handleDTMF(ctx context.Context, e domain.TelephonyEvent) (*domain.Candidate, error) {
	switch e.DTMFInput {
	case domain.DTMFAccept:
		return s.responder.Accept(ctx, e.CandidateID)
	case domain.DTMFDecline:
		return s.responder.Decline(ctx, e.CandidateID)
	}
	return nil, fmt.Errorf("%w: unsupported keypad input %q", domain.ErrValidation, e.DTMFInput)
}
