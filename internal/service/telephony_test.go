package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func callEvent(typ domain.TelephonyEventType, candidateID string) domain.TelephonyEvent {
	return domain.TelephonyEvent{Type: typ, CandidateID: candidateID, CallID: "call-1"}
}

func TestTelephonyService_CallStatusAndRetry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	b := f.babysitter(t, "Kazan", "Sovetsky")
	req := f.request(t, p, "Sovetsky")
	c := f.candidate(t, req.ID, b.ID)

	_, err := f.telephony.RetryCall(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState, "nothing to retry while the first call is pending")

	got, err := f.telephony.HandleWebhook(ctx, callEvent(domain.CallInitiated, c.ID))
	require.NoError(t, err)
	assert.Equal(t, domain.CallStatusCalling, got.CallStatus)
	assert.Equal(t, 1, got.CallAttempts)

	_, err = f.telephony.HandleWebhook(ctx, callEvent(domain.CallNoAnswer, c.ID))
	require.NoError(t, err)

	status, err := f.telephony.CallStatus(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CallStatusNoAnswer, status.CallStatus)

	got, err = f.telephony.RetryCall(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CallStatusPending, got.CallStatus)
	assert.Equal(t, 1, got.CallAttempts)
	f.waitEvent(t, domain.EventCallRequested)

	got, err = f.telephony.HandleWebhook(ctx, callEvent(domain.CallInitiated, c.ID))
	require.NoError(t, err)
	assert.Equal(t, 2, got.CallAttempts)

	assert.Equal(t, domain.ResponsePending, f.candidate(t, req.ID, b.ID).Response, "call status never answers for the babysitter")
}

func TestTelephonyService_DTMF(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	yes := f.babysitter(t, "Kazan", "Sovetsky")
	no := f.babysitter(t, "Kazan", "Sovetsky")
	req := f.request(t, p, "Sovetsky")

	e := callEvent(domain.DTMFReceived, f.candidate(t, req.ID, yes.ID).ID)
	e.DTMFInput = domain.DTMFAccept
	got, err := f.telephony.HandleWebhook(ctx, e)
	require.NoError(t, err)
	assert.Equal(t, domain.ResponseInterested, got.Response)

	e = callEvent(domain.DTMFReceived, f.candidate(t, req.ID, no.ID).ID)
	e.DTMFInput = domain.DTMFDecline
	got, err = f.telephony.HandleWebhook(ctx, e)
	require.NoError(t, err)
	assert.Equal(t, domain.ResponseDeclined, got.Response)

	e.DTMFInput = "9"
	_, err = f.telephony.HandleWebhook(ctx, e)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTelephonyService_RetryAfterResponse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	b := f.babysitter(t, "Kazan", "Sovetsky")
	req := f.request(t, p, "Sovetsky")
	c := f.candidate(t, req.ID, b.ID)

	_, err := f.telephony.HandleWebhook(ctx, callEvent(domain.CallFailed, c.ID))
	require.NoError(t, err)
	_, err = f.responses.Decline(ctx, c.ID)
	require.NoError(t, err)

	_, err = f.telephony.RetryCall(ctx, c.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestTelephonyService_UnknownEvent(t *testing.T) {
	candidates := mocks.NewMockCandidateRepo(t)
	svc := NewTelephonyService(candidates, nil, nil, nil, newTestLogger(t))

	candidates.EXPECT().GetByID(mock.Anything, "c1").Return(domain.NewCandidate("c1", "r1", "b1", time.Now().UTC()), nil)

	_, err := svc.HandleWebhook(context.Background(), callEvent("CALL_TELEPORTED", "c1"))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTelephonyService_AnsweredIsReadOnly(t *testing.T) {
	candidates := mocks.NewMockCandidateRepo(t)
	svc := NewTelephonyService(candidates, nil, nil, nil, newTestLogger(t))

	c := domain.NewCandidate("c1", "r1", "b1", time.Now().UTC())
	c.CallStatus = domain.CallStatusCalling
	candidates.EXPECT().GetByID(mock.Anything, "c1").Return(c, nil)

	got, err := svc.HandleWebhook(context.Background(), callEvent(domain.CallAnswered, "c1"))

	require.NoError(t, err)
	assert.Equal(t, domain.CallStatusCalling, got.CallStatus)
	candidates.AssertNotCalled(t, "UpdateCall", mock.Anything, mock.Anything)
}

func TestTelephonyService_ClosedRequestFreezesCalls(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req, bs := offered(t, f, 2)

	_, err := f.selection.Select(ctx, req.ID, bs[0].ID)
	require.NoError(t, err)

	other := f.candidate(t, req.ID, bs[1].ID)
	_, err = f.telephony.HandleWebhook(ctx, callEvent(domain.CallInitiated, other.ID))
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	after := f.candidate(t, req.ID, bs[1].ID)
	assert.Equal(t, domain.CallStatusPending, after.CallStatus)
	assert.Equal(t, 0, after.CallAttempts)

	selected := f.candidate(t, req.ID, bs[0].ID)
	got, err := f.telephony.HandleWebhook(ctx, callEvent(domain.CallInitiated, selected.ID))
	require.NoError(t, err, "the booked babysitter's call is still tracked")
	assert.Equal(t, domain.CallStatusCalling, got.CallStatus)
}

func TestTelephonyService_ConcurrentInitiatedCountsOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	b := f.babysitter(t, "Kazan", "Sovetsky")
	req := f.request(t, p, "Sovetsky")
	c := f.candidate(t, req.ID, b.ID)

	const n = 10
	var (
		wg      sync.WaitGroup
		applied atomic.Int32
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.telephony.HandleWebhook(ctx, callEvent(domain.CallInitiated, c.ID)); err == nil {
				applied.Add(1)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidState)
			}
		}()
	}
	wg.Wait()

	stored := f.candidate(t, req.ID, b.ID)
	assert.Equal(t, int32(1), applied.Load(), "only one webhook starts the call")
	assert.Equal(t, 1, stored.CallAttempts)
	assert.Equal(t, domain.CallStatusCalling, stored.CallStatus)
}

func TestTelephonyService_StaleCallStatus(t *testing.T) {
	candidates := mocks.NewMockCandidateRepo(t)
	svc := NewTelephonyService(candidates, nil, nil, nil, newTestLogger(t))

	c := domain.NewCandidate("c1", "r1", "b1", time.Now().UTC())
	c.CallStatus = domain.CallStatusCalling
	candidates.EXPECT().GetByID(mock.Anything, "c1").Return(c, nil)
	candidates.EXPECT().UpdateCall(mock.Anything, domain.CallChange{
		CandidateID: "c1",
		From:        domain.CallStatusCalling,
		To:          domain.CallStatusNoAnswer,
	}).Return(&domain.StateError{Entity: "call for candidate", ID: "c1", Current: "PENDING", Attempted: "move to NO_ANSWER"})

	_, err := svc.HandleWebhook(context.Background(), callEvent(domain.CallNoAnswer, "c1"))

	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestTelephonyService_LateOutcomeAfterRetry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	b := f.babysitter(t, "Kazan", "Sovetsky")
	req := f.request(t, p, "Sovetsky")
	c := f.candidate(t, req.ID, b.ID)

	_, err := f.telephony.HandleWebhook(ctx, callEvent(domain.CallInitiated, c.ID))
	require.NoError(t, err)
	_, err = f.telephony.HandleWebhook(ctx, callEvent(domain.CallNoAnswer, c.ID))
	require.NoError(t, err)
	_, err = f.telephony.RetryCall(ctx, c.ID)
	require.NoError(t, err)

	_, err = f.telephony.HandleWebhook(ctx, callEvent(domain.CallNoAnswer, c.ID))

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, domain.CallStatusPending, f.candidate(t, req.ID, b.ID).CallStatus)
}
