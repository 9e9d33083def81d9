package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testBooking(status domain.BookingStatus) *domain.Booking {
	now := time.Now().UTC()
	return &domain.Booking{
		ID:           "bk1",
		RequestID:    "r1",
		ParentID:     "p1",
		BabysitterID: "b1",
		Start:        now.Add(time.Hour),
		End:          now.Add(3 * time.Hour),
		Status:       status,
		ConfirmedAt:  now,
		CreatedAt:    now,
	}
}

func TestBookingService_Start(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	events := mocks.NewMockEventPublisher(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, events, log)

	published := make(chan domain.Event, 1)
	bookingRepo.EXPECT().GetByID(mock.Anything, "bk1").Return(testBooking(domain.BookingStatusConfirmed), nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, mock.MatchedBy(func(ch domain.BookingChange) bool {
		return ch.BookingID == "bk1" &&
			ch.From == domain.BookingStatusConfirmed &&
			ch.To == domain.BookingStatusInProgress &&
			ch.RequestStatus == ""
	})).Return(nil)
	events.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e domain.Event) { published <- e }).
		Return()

	b, err := svc.Start(context.Background(), "bk1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusInProgress, b.Status)
	require.NotNil(t, b.StartedAt)

	select {
	case e := <-published:
		assert.Equal(t, domain.EventBookingStarted, e.Type)
		assert.Equal(t, "b1", e.BabysitterID)
	case <-time.After(time.Second):
		t.Fatal("booking.started was not published")
	}
}

func TestBookingService_Start_WrongState(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, mocks.NewMockEventPublisher(t), newTestLogger(t))

	bookingRepo.EXPECT().GetByID(mock.Anything, "bk1").Return(testBooking(domain.BookingStatusCompleted), nil)

	_, err := svc.Start(context.Background(), "bk1")

	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestBookingService_Complete_LostRace(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, mocks.NewMockEventPublisher(t), newTestLogger(t))

	bookingRepo.EXPECT().GetByID(mock.Anything, "bk1").Return(testBooking(domain.BookingStatusInProgress), nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, mock.Anything).
		Return(&domain.StateError{Entity: "booking", ID: "bk1", Current: "CANCELLED", Attempted: "move to COMPLETED"})

	_, err := svc.Complete(context.Background(), "bk1")

	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestBookingService_Cancel_RequiresReason(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, mocks.NewMockEventPublisher(t), newTestLogger(t))

	bookingRepo.EXPECT().GetByID(mock.Anything, "bk1").Return(testBooking(domain.BookingStatusConfirmed), nil)

	_, err := svc.Cancel(context.Background(), "bk1", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_NotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, mocks.NewMockEventPublisher(t), newTestLogger(t))

	bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Complete(context.Background(), "missing")

	assert.True(t, domain.IsNotFound(err))
}

func TestBookingService_Rate_Validation(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, mocks.NewMockEventPublisher(t), newTestLogger(t))

	zero := 0
	_, err := svc.Rate(context.Background(), "bk1", domain.RateBookingInput{ParentRating: &zero})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Rate_StoreError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, mocks.NewMockEventPublisher(t), newTestLogger(t))

	four := 4
	bookingRepo.EXPECT().GetByID(mock.Anything, "bk1").Return(testBooking(domain.BookingStatusCompleted), nil)
	bookingRepo.EXPECT().SaveRating(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := svc.Rate(context.Background(), "bk1", domain.RateBookingInput{BabysitterRating: &four})

	assert.Error(t, err)
}

func TestBookingService_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req, bs := offered(t, f, 1)

	booking, err := f.selection.Select(ctx, req.ID, bs[0].ID)
	require.NoError(t, err)

	five := 5
	_, err = f.bookings.Rate(ctx, booking.ID, domain.RateBookingInput{ParentRating: &five})
	assert.ErrorIs(t, err, domain.ErrInvalidState, "only completed bookings take ratings")

	_, err = f.bookings.Complete(ctx, booking.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	booking, err = f.bookings.Start(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusInProgress, booking.Status)
	assert.Equal(t, domain.RequestStatusConfirmed, f.requestStatus(t, req.ID))

	booking, err = f.bookings.Complete(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, booking.Status)
	assert.Equal(t, domain.RequestStatusCompleted, f.requestStatus(t, req.ID))

	review := "Отличная няня"
	booking, err = f.bookings.Rate(ctx, booking.ID, domain.RateBookingInput{ParentRating: &five, ParentReview: &review})
	require.NoError(t, err)

	stored, err := f.bookings.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ParentRating)
	assert.Equal(t, 5, *stored.ParentRating)
	assert.Equal(t, review, stored.ParentReview)

	_, err = f.bookings.Cancel(ctx, booking.ID, "передумали")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestBookingService_Cancel_ClosesRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req, bs := offered(t, f, 1)

	booking, err := f.selection.Select(ctx, req.ID, bs[0].ID)
	require.NoError(t, err)

	booking, err = f.bookings.Cancel(ctx, booking.ID, "ребёнок заболел")
	require.NoError(t, err)

	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
	assert.Equal(t, "ребёнок заболел", booking.CancelReason)
	assert.Equal(t, domain.RequestStatusCancelled, f.requestStatus(t, req.ID))

	e := f.waitEvent(t, domain.EventBookingCancelled)
	assert.Equal(t, "ребёнок заболел", e.Reason)
}
