package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseService_Accept(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	b := f.babysitter(t, "Kazan", "Sovetsky")
	req := f.request(t, p, "Sovetsky")
	c := f.candidate(t, req.ID, b.ID)

	got, err := f.responses.Accept(ctx, c.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.ResponseInterested, got.Response)
	require.NotNil(t, got.BabysitterRespondedAt)
	assert.Nil(t, got.GuardianRespondedAt)
	assert.Equal(t, domain.ResponseInterested, f.candidate(t, req.ID, b.ID).Response)
	assert.Equal(t, domain.RequestStatusPendingResponses, f.requestStatus(t, req.ID), "responses never move the request")

	e := f.waitEvent(t, domain.EventCandidateResponse)
	assert.Equal(t, c.ID, e.CandidateID)
	assert.Equal(t, p.ID, e.ParentID)
}

func TestResponseService_Accept_Twice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	b := f.babysitter(t, "Kazan", "Sovetsky")
	req := f.request(t, p, "Sovetsky")
	c := f.candidate(t, req.ID, b.ID)

	_, err := f.responses.Decline(ctx, c.ID)
	require.NoError(t, err)

	_, err = f.responses.Accept(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, domain.ResponseDeclined, f.candidate(t, req.ID, b.ID).Response)
}

func TestResponseService_GuardianFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	b := f.babysitter(t, "Kazan", "Sovetsky", withGuardian())
	req := f.request(t, p, "Sovetsky")
	c := f.candidate(t, req.ID, b.ID)

	got, err := f.responses.Accept(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ResponseGuardianPending, got.Response)
	f.waitEvent(t, domain.EventGuardianRequested)

	_, err = f.selection.Select(ctx, req.ID, b.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState, "not selectable before the guardian approves")

	got, err = f.responses.GuardianApprove(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ResponseGuardianApproved, got.Response)
	require.NotNil(t, got.GuardianRespondedAt)

	_, err = f.selection.Select(ctx, req.ID, b.ID)
	assert.NoError(t, err)
}

func TestResponseService_GuardianDecline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	b := f.babysitter(t, "Kazan", "Sovetsky", withGuardian())
	req := f.request(t, p, "Sovetsky")
	c := f.candidate(t, req.ID, b.ID)

	_, err := f.responses.Accept(ctx, c.ID)
	require.NoError(t, err)

	got, err := f.responses.GuardianDecline(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ResponseGuardianDeclined, got.Response)
	assert.False(t, got.Response.IsAvailable())
}

func TestResponseService_GuardianApproveAfterDecline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	b := f.babysitter(t, "Kazan", "Sovetsky", withGuardian())
	req := f.request(t, p, "Sovetsky")
	c := f.candidate(t, req.ID, b.ID)

	_, err := f.responses.Decline(ctx, c.ID)
	require.NoError(t, err)

	_, err = f.responses.GuardianApprove(ctx, c.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, domain.ResponseDeclined, f.candidate(t, req.ID, b.ID).Response)
}

func TestResponseService_ClosedRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	b := f.babysitter(t, "Kazan", "Sovetsky")
	req := f.request(t, p, "Sovetsky")
	c := f.candidate(t, req.ID, b.ID)
	_, err := f.requests.Cancel(ctx, req.ID)
	require.NoError(t, err)

	_, err = f.responses.Accept(ctx, c.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, domain.ResponsePending, f.candidate(t, req.ID, b.ID).Response)
}

func TestResponseService_UnknownCandidate(t *testing.T) {
	f := newFixture(t)

	_, err := f.responses.Accept(context.Background(), "22222222-2222-2222-2222-222222222222")

	assert.True(t, domain.IsNotFound(err))
}

func TestResponseService_PendingForBabysitter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	b := f.babysitter(t, "Kazan", "Sovetsky")
	open := f.request(t, p, "Sovetsky")
	answered := f.request(t, p, "Sovetsky")
	closed := f.request(t, p, "Sovetsky")

	_, err := f.responses.Decline(ctx, f.candidate(t, answered.ID, b.ID).ID)
	require.NoError(t, err)
	_, err = f.requests.Cancel(ctx, closed.ID)
	require.NoError(t, err)

	pending, err := f.responses.PendingForBabysitter(ctx, b.ID)

	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, open.ID, pending[0].RequestID)
}

func TestResponseService_ConcurrentAccept(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	b := f.babysitter(t, "Kazan", "Sovetsky")
	req := f.request(t, p, "Sovetsky")
	c := f.candidate(t, req.ID, b.ID)

	const n = 16
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 0 {
				_, err = f.responses.Accept(ctx, c.ID)
			} else {
				_, err = f.responses.Decline(ctx, c.ID)
			}
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidState)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.True(t, f.candidate(t, req.ID, b.ID).Response.IsTerminal())
}
