package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	events      ports.EventPublisher
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	events ports.EventPublisher,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		events:      events,
		logger:      logger,
	}
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListByParent(ctx context.Context, parentID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByParent(ctx, parentID)
}

func (s *BookingService) ListByBabysitter(ctx context.Context, babysitterID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByBabysitter(ctx, babysitterID)
}

func (s *BookingService) Start(ctx context.Context, id string) (*domain.Booking, error) {
	return s.transition(ctx, id, domain.EventBookingStarted, func(b *domain.Booking, at time.Time) (domain.BookingChange, error) {
		return b.Begin(at)
	})
}

// Complete closes the booking and its request.
func (s *BookingService) Complete(ctx context.Context, id string) (*domain.Booking, error) {
	return s.transition(ctx, id, domain.EventBookingCompleted, func(b *domain.Booking, at time.Time) (domain.BookingChange, error) {
		return b.Complete(at)
	})
}

// Cancel cancels the booking and its request. A reason is mandatory.
func (s *BookingService) Cancel(ctx context.Context, id, reason string) (*domain.Booking, error) {
	return s.transition(ctx, id, domain.EventBookingCancelled, func(b *domain.Booking, at time.Time) (domain.BookingChange, error) {
		return b.Cancel(reason, at)
	})
}

func (s *BookingService) Rate(ctx context.Context, id string, input domain.RateBookingInput) (*domain.Booking, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if err = b.Rate(input); err != nil {
		return nil, err
	}

	if err = s.bookingRepo.SaveRating(ctx, b); err != nil {
		return nil, fmt.Errorf("save rating: %w", err)
	}

	s.logger.Info("booking rated", logger.String("booking_id", b.ID))

	return b, nil
}

func (s *BookingService) transition(
	ctx context.Context,
	id string,
	eventType domain.EventType,
	decide func(b *domain.Booking, at time.Time) (domain.BookingChange, error),
) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	ch, err := decide(b, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = s.bookingRepo.UpdateStatus(ctx, ch); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	b.ApplyChange(ch)

	s.logger.Info("booking status changed",
		logger.String("booking_id", b.ID),
		logger.String("request_id", b.RequestID),
		logger.String("from", string(ch.From)),
		logger.String("to", string(ch.To)),
	)

	go s.events.Publish(context.WithoutCancel(ctx), bookingEvent(eventType, b))

	return b, nil
}
