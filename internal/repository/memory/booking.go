package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/stpnv0/SitterMatch/internal/domain"
)

type BookingRepo struct {
	s *Store
}

func (r *BookingRepo) CreateForSelection(_ context.Context, b *domain.Booking, candidateID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.requests[b.RequestID]
	if !ok {
		return domain.ErrRequestNotFound
	}
	switch {
	case req.Status == domain.RequestStatusConfirmed, req.Status == domain.RequestStatusCompleted:
		return fmt.Errorf("%w: request %s", domain.ErrAlreadyConfirmed, req.ID)
	case !req.Status.IsOpen():
		return req.StateError("select a babysitter")
	}
	for _, existing := range r.s.bookings {
		if existing.RequestID == req.ID {
			return fmt.Errorf("%w: request %s", domain.ErrAlreadyConfirmed, req.ID)
		}
	}

	c, ok := r.s.candidates[candidateID]
	if !ok || c.RequestID != req.ID || c.BabysitterID != b.BabysitterID {
		return domain.ErrCandidateNotFound
	}
	if !c.Response.IsAvailable() {
		return &domain.StateError{
			Entity:    "candidate",
			ID:        c.ID,
			Current:   string(c.Response),
			Attempted: "select",
		}
	}

	b.ParentID = req.ParentID
	b.Start = req.Start
	b.End = req.End
	b.Address = req.Address

	r.s.bookings[b.ID] = cloneBooking(b)
	req.Status = domain.RequestStatusConfirmed
	req.UpdatedAt = b.ConfirmedAt
	return nil
}

func (r *BookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

func (r *BookingRepo) ListByParent(_ context.Context, parentID string) ([]*domain.Booking, error) {
	return r.list(func(b *domain.Booking) bool { return b.ParentID == parentID }), nil
}

func (r *BookingRepo) ListByBabysitter(_ context.Context, babysitterID string) ([]*domain.Booking, error) {
	return r.list(func(b *domain.Booking) bool { return b.BabysitterID == babysitterID }), nil
}

func (r *BookingRepo) UpdateStatus(_ context.Context, ch domain.BookingChange) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[ch.BookingID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if b.Status != ch.From {
		return &domain.StateError{
			Entity:    "booking",
			ID:        b.ID,
			Current:   string(b.Status),
			Attempted: "move to " + string(ch.To),
		}
	}

	b.ApplyChange(ch)
	if ch.RequestStatus != "" {
		if req, ok := r.s.requests[b.RequestID]; ok && req.Status.CanMoveTo(ch.RequestStatus) {
			req.Status = ch.RequestStatus
			req.UpdatedAt = time.Now().UTC()
		}
	}
	return nil
}

func (r *BookingRepo) SaveRating(_ context.Context, upd *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[upd.ID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if b.Status != domain.BookingStatusCompleted {
		return &domain.StateError{
			Entity:    "booking",
			ID:        b.ID,
			Current:   string(b.Status),
			Attempted: "rate",
		}
	}

	b.ParentRating = cloneInt(upd.ParentRating)
	b.ParentReview = upd.ParentReview
	b.BabysitterRating = cloneInt(upd.BabysitterRating)
	return nil
}

func (r *BookingRepo) list(keep func(*domain.Booking) bool) []*domain.Booking {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var res []*domain.Booking
	for _, b := range r.s.bookings {
		if keep(b) {
			res = append(res, cloneBooking(b))
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.After(res[j].CreatedAt)
		}
		return res[i].ID > res[j].ID
	})
	return res
}
