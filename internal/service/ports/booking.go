package ports

import (
	"context"

	"github.com/stpnv0/SitterMatch/internal/domain"
)

type BookingRepo interface {
	// CreateForSelection locks the request and the candidate, re-checks that
	// the request is open and the candidate is available, refreshes b's window
	// and address from the locked request, inserts b and confirms the request.
	CreateForSelection(ctx context.Context, b *domain.Booking, candidateID string) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByParent(ctx context.Context, parentID string) ([]*domain.Booking, error)
	ListByBabysitter(ctx context.Context, babysitterID string) ([]*domain.Booking, error)
	// UpdateStatus applies ch only if the booking still holds ch.From.
	UpdateStatus(ctx context.Context, ch domain.BookingChange) error
	SaveRating(ctx context.Context, b *domain.Booking) error
}
