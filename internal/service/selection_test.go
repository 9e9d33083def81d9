package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// offered creates a request with one interested candidate per babysitter.
func offered(t *testing.T, f *fixture, sitters int) (*domain.Request, []*domain.BabysitterProfile) {
	t.Helper()
	p := f.parent(t, "Kazan", "Sovetsky")
	bs := make([]*domain.BabysitterProfile, 0, sitters)
	for i := 0; i < sitters; i++ {
		bs = append(bs, f.babysitter(t, "Kazan", "Sovetsky"))
	}
	req := f.request(t, p, "Sovetsky")
	for _, b := range bs {
		_, err := f.responses.Accept(context.Background(), f.candidate(t, req.ID, b.ID).ID)
		require.NoError(t, err)
	}
	return req, bs
}

func TestSelectionService_Select(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req, bs := offered(t, f, 2)

	booking, err := f.selection.Select(ctx, req.ID, bs[0].ID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, domain.PaymentStatusPending, booking.PaymentStatus)
	assert.Equal(t, req.ID, booking.RequestID)
	assert.Equal(t, req.ParentID, booking.ParentID)
	assert.Equal(t, bs[0].ID, booking.BabysitterID)
	assert.True(t, booking.Start.Equal(req.Start))
	assert.True(t, booking.End.Equal(req.End))
	assert.Equal(t, req.Address, booking.Address)
	assert.Equal(t, domain.RequestStatusConfirmed, f.requestStatus(t, req.ID))

	// the other candidate is left as it was
	assert.Equal(t, domain.ResponseInterested, f.candidate(t, req.ID, bs[1].ID).Response)

	e := f.waitEvent(t, domain.EventBookingConfirmed)
	assert.Equal(t, booking.ID, e.BookingID)
}

func TestSelectionService_Select_Twice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req, bs := offered(t, f, 2)

	_, err := f.selection.Select(ctx, req.ID, bs[0].ID)
	require.NoError(t, err)

	_, err = f.selection.Select(ctx, req.ID, bs[1].ID)

	assert.ErrorIs(t, err, domain.ErrAlreadyConfirmed)
	assert.True(t, domain.IsConflict(err))

	bookings, err := f.bookings.ListByParent(ctx, req.ParentID)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestSelectionService_Select_PendingCandidate(t *testing.T) {
	f := newFixture(t)
	p := f.parent(t, "Kazan", "Sovetsky")
	b := f.babysitter(t, "Kazan", "Sovetsky")
	req := f.request(t, p, "Sovetsky")

	_, err := f.selection.Select(context.Background(), req.ID, b.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, domain.RequestStatusPendingResponses, f.requestStatus(t, req.ID))
}

func TestSelectionService_Select_NotACandidate(t *testing.T) {
	f := newFixture(t)
	req, _ := offered(t, f, 1)
	stranger := f.babysitter(t, "Moscow", "Arbat")

	_, err := f.selection.Select(context.Background(), req.ID, stranger.ID)

	assert.True(t, domain.IsNotFound(err))
}

func TestSelectionService_Select_CancelledRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req, bs := offered(t, f, 1)
	_, err := f.requests.Cancel(ctx, req.ID)
	require.NoError(t, err)

	_, err = f.selection.Select(ctx, req.ID, bs[0].ID)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.False(t, domain.IsConflict(err))
}

func TestSelectionService_ConcurrentSelect(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req, bs := offered(t, f, 8)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		winners   []string
		conflicts int
	)
	for _, b := range bs {
		wg.Add(1)
		go func(babysitterID string) {
			defer wg.Done()
			booking, err := f.selection.Select(ctx, req.ID, babysitterID)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				winners = append(winners, booking.BabysitterID)
				return
			}
			if domain.IsConflict(err) {
				conflicts++
			}
		}(b.ID)
	}
	wg.Wait()

	require.Len(t, winners, 1)
	assert.Equal(t, len(bs)-1, conflicts)

	bookings, err := f.bookings.ListByBabysitter(ctx, winners[0])
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, domain.RequestStatusConfirmed, f.requestStatus(t, req.ID))
}
