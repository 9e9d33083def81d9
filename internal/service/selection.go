package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// SelectionService turns the parent's choice of candidate into a booking.
type SelectionService struct {
	requests   ports.RequestRepo
	candidates ports.CandidateRepo
	bookings   ports.BookingRepo
	events     ports.EventPublisher
	logger     logger.Logger
}

func NewSelectionService(
	requests ports.RequestRepo,
	candidates ports.CandidateRepo,
	bookings ports.BookingRepo,
	events ports.EventPublisher,
	logger logger.Logger,
) *SelectionService {
	return &SelectionService{
		requests:   requests,
		candidates: candidates,
		bookings:   bookings,
		events:     events,
		logger:     logger,
	}
}

// Select books babysitterID for the request. The store re-validates every
// precondition inside the transaction that creates the booking, so a losing
// concurrent selection fails without side effects.
func (s *SelectionService) Select(ctx context.Context, requestID, babysitterID string) (*domain.Booking, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if err = checkSelectable(req); err != nil {
		return nil, err
	}

	c, err := s.candidates.GetByRequestAndBabysitter(ctx, requestID, babysitterID)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	if !c.Response.IsAvailable() {
		return nil, &domain.StateError{
			Entity:    "candidate",
			ID:        c.ID,
			Current:   string(c.Response),
			Attempted: "select",
		}
	}

	booking := domain.NewBookingFromRequest(uuid.New().String(), req, babysitterID, time.Now().UTC())
	if err = s.bookings.CreateForSelection(ctx, booking, c.ID); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("babysitter selected",
		logger.String("booking_id", booking.ID),
		logger.String("request_id", requestID),
		logger.String("candidate_id", c.ID),
		logger.String("babysitter_id", babysitterID),
	)

	go s.events.Publish(context.WithoutCancel(ctx), bookingEvent(domain.EventBookingConfirmed, booking))

	return booking, nil
}

// checkSelectable maps a request that can no longer take a selection to the
// matching error: conflict once a booking exists, invalid state otherwise.
func checkSelectable(r *domain.Request) error {
	switch {
	case r.Status == domain.RequestStatusConfirmed, r.Status == domain.RequestStatusCompleted:
		return fmt.Errorf("%w: request %s", domain.ErrAlreadyConfirmed, r.ID)
	case !r.Status.IsOpen():
		return r.StateError("select a babysitter")
	}
	return nil
}
