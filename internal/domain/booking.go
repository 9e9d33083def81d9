package domain

import (
	"fmt"
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusInProgress BookingStatus = "IN_PROGRESS"
	BookingStatusCompleted  BookingStatus = "COMPLETED"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
	PaymentStatusFailed   PaymentStatus = "FAILED"
)

const (
	minRating = 1
	maxRating = 5
)

type Booking struct {
	ID               string        `json:"id"`
	RequestID        string        `json:"request_id"`
	ParentID         string        `json:"parent_id"`
	BabysitterID     string        `json:"babysitter_id"`
	Start            time.Time     `json:"datetime_start"`
	End              time.Time     `json:"datetime_end"`
	Address          string        `json:"address"`
	Status           BookingStatus `json:"status"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	ConfirmedAt      time.Time     `json:"confirmed_at"`
	StartedAt        *time.Time    `json:"started_at,omitempty"`
	CompletedAt      *time.Time    `json:"completed_at,omitempty"`
	CancelledAt      *time.Time    `json:"cancelled_at,omitempty"`
	CancelReason     string        `json:"cancel_reason,omitempty"`
	ParentRating     *int          `json:"parent_rating,omitempty"`
	ParentReview     string        `json:"parent_review,omitempty"`
	BabysitterRating *int          `json:"babysitter_rating,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}

// NewBookingFromRequest copies the request's window and address so later
// request changes never reach the booking.
func NewBookingFromRequest(id string, r *Request, babysitterID string, now time.Time) *Booking {
	return &Booking{
		ID:            id,
		RequestID:     r.ID,
		ParentID:      r.ParentID,
		BabysitterID:  babysitterID,
		Start:         r.Start,
		End:           r.End,
		Address:       r.Address,
		Status:        BookingStatusConfirmed,
		PaymentStatus: PaymentStatusPending,
		ConfirmedAt:   now,
		CreatedAt:     now,
	}
}

// BookingChange is a compare-and-set on Booking.Status. RequestStatus, when
// set, is written to the owning request in the same transaction.
type BookingChange struct {
	BookingID     string
	From          BookingStatus
	To            BookingStatus
	At            time.Time
	Reason        string
	RequestStatus RequestStatus
}

func (b *Booking) Begin(at time.Time) (BookingChange, error) {
	if b.Status != BookingStatusConfirmed {
		return BookingChange{}, b.stateError("start")
	}
	return BookingChange{BookingID: b.ID, From: b.Status, To: BookingStatusInProgress, At: at}, nil
}

func (b *Booking) Complete(at time.Time) (BookingChange, error) {
	if b.Status != BookingStatusInProgress {
		return BookingChange{}, b.stateError("complete")
	}
	return BookingChange{
		BookingID:     b.ID,
		From:          b.Status,
		To:            BookingStatusCompleted,
		At:            at,
		RequestStatus: RequestStatusCompleted,
	}, nil
}

func (b *Booking) Cancel(reason string, at time.Time) (BookingChange, error) {
	if b.Status != BookingStatusConfirmed && b.Status != BookingStatusInProgress {
		return BookingChange{}, b.stateError("cancel")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return BookingChange{}, fmt.Errorf("%w: cancellation reason is required", ErrValidation)
	}
	return BookingChange{
		BookingID:     b.ID,
		From:          b.Status,
		To:            BookingStatusCancelled,
		At:            at,
		Reason:        reason,
		RequestStatus: RequestStatusCancelled,
	}, nil
}

// ApplyChange writes the change into b, stamping the matching timestamp.
func (b *Booking) ApplyChange(ch BookingChange) {
	at := ch.At
	b.Status = ch.To
	switch ch.To {
	case BookingStatusInProgress:
		b.StartedAt = &at
	case BookingStatusCompleted:
		b.CompletedAt = &at
	case BookingStatusCancelled:
		b.CancelledAt = &at
		b.CancelReason = ch.Reason
	}
}

func (b *Booking) stateError(attempted string) error {
	return newStateError("booking", b.ID, string(b.Status), attempted)
}

type RateBookingInput struct {
	ParentRating     *int
	ParentReview     *string
	BabysitterRating *int
}

func (in RateBookingInput) Validate() error {
	if in.ParentRating == nil && in.ParentReview == nil && in.BabysitterRating == nil {
		return fmt.Errorf("%w: nothing to rate", ErrValidation)
	}
	for name, r := range map[string]*int{"parent_rating": in.ParentRating, "babysitter_rating": in.BabysitterRating} {
		if r != nil && (*r < minRating || *r > maxRating) {
			return fmt.Errorf("%w: %s must be between %d and %d", ErrValidation, name, minRating, maxRating)
		}
	}
	return nil
}

// Rate checks that the booking can take ratings and merges them into b.
func (b *Booking) Rate(in RateBookingInput) error {
	if b.Status != BookingStatusCompleted {
		return b.stateError("rate")
	}
	if in.ParentRating != nil {
		v := *in.ParentRating
		b.ParentRating = &v
	}
	if in.ParentReview != nil {
		b.ParentReview = *in.ParentReview
	}
	if in.BabysitterRating != nil {
		v := *in.BabysitterRating
		b.BabysitterRating = &v
	}
	return nil
}
