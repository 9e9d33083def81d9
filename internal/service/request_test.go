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

func TestRequestService_Create_MatchesEligibleBabysitters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	near := f.babysitter(t, "Kazan", "Sovetsky")
	serving := f.babysitter(t, "Kazan", "Privolzhsky", withAreas("Vakhitovsky"))
	f.babysitter(t, "Kazan", "Kirovsky")
	f.babysitter(t, "Moscow", "Sovetsky")

	req := f.request(t, p, "Vakhitovsky")

	assert.Equal(t, domain.RequestStatusPendingResponses, req.Status)

	candidates, err := f.store.Candidates().ListByRequest(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, near.ID, candidates[0].BabysitterID)
	assert.Equal(t, serving.ID, candidates[1].BabysitterID)
	for _, c := range candidates {
		assert.Equal(t, domain.ResponsePending, c.Response)
		assert.Equal(t, domain.CallStatusPending, c.CallStatus)
		assert.Zero(t, c.CallAttempts)
	}

	created := f.waitEvent(t, domain.EventRequestCreated)
	assert.Equal(t, req.ID, created.RequestID)
	f.waitEvent(t, domain.EventCandidateCreated)
}

func TestRequestService_Create_NoMatches(t *testing.T) {
	f := newFixture(t)

	p := f.parent(t, "Kazan", "Sovetsky")
	f.babysitter(t, "Moscow", "Sovetsky")

	req := f.request(t, p, "Sovetsky")

	assert.Equal(t, domain.RequestStatusPendingResponses, req.Status)
	candidates, err := f.store.Candidates().ListByRequest(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestRequestService_Create_ParentNotFound(t *testing.T) {
	f := newFixture(t)
	start := time.Now().Add(time.Hour)

	_, err := f.requests.Create(context.Background(), domain.CreateRequestInput{
		ParentID:     "00000000-0000-0000-0000-000000000000",
		Start:        start,
		End:          start.Add(time.Hour),
		Area:         "Center",
		ChildrenAges: []int{2},
	})

	assert.ErrorIs(t, err, domain.ErrParentNotFound)
}

func TestRequestService_Create_InvalidWindow(t *testing.T) {
	f := newFixture(t)
	p := f.parent(t, "Kazan", "Sovetsky")
	start := time.Now().Add(time.Hour)

	_, err := f.requests.Create(context.Background(), domain.CreateRequestInput{
		ParentID:     p.ID,
		Start:        start,
		End:          start,
		Area:         "Sovetsky",
		ChildrenAges: []int{2},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRequestService_Match_NeverDuplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	f.babysitter(t, "Kazan", "Sovetsky")
	f.babysitter(t, "Kazan", "Sovetsky")
	req := f.request(t, p, "Sovetsky")

	late := f.babysitter(t, "Kazan", "Sovetsky")

	added, err := f.requests.Match(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, late.ID, added[0].BabysitterID)

	added, err = f.requests.Match(ctx, req.ID)
	require.NoError(t, err)
	assert.Empty(t, added)

	candidates, err := f.store.Candidates().ListByRequest(ctx, req.ID)
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, c := range candidates {
		assert.False(t, seen[c.BabysitterID], "babysitter %s listed twice", c.BabysitterID)
		seen[c.BabysitterID] = true
	}
	assert.Len(t, candidates, 3)
}

func TestRequestService_Match_ClosedRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	req := f.request(t, p, "Sovetsky")
	_, err := f.requests.Cancel(ctx, req.ID)
	require.NoError(t, err)

	_, err = f.requests.Match(ctx, req.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestRequestService_Candidates_MovesToSelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	b := f.babysitter(t, "Kazan", "Sovetsky")
	req := f.request(t, p, "Sovetsky")

	list, err := f.requests.Candidates(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Babysitter)
	assert.Equal(t, b.FullName, list[0].Babysitter.FullName)
	assert.Equal(t, domain.RequestStatusPendingResponses, f.requestStatus(t, req.ID))

	_, err = f.responses.Accept(ctx, list[0].ID)
	require.NoError(t, err)

	list, err = f.requests.Candidates(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ResponseInterested, list[0].Response)
	assert.Equal(t, domain.RequestStatusPendingSelection, f.requestStatus(t, req.ID))
}

func TestRequestService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	req := f.request(t, p, "Sovetsky")

	notes := "аллергия на кошек"
	updated, err := f.requests.Update(ctx, req.ID, domain.UpdateRequestInput{Requirements: &notes})
	require.NoError(t, err)
	assert.Equal(t, notes, updated.Requirements)
	assert.Equal(t, req.Start, updated.Start, "window is not editable")

	stored, err := f.requests.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, notes, stored.Requirements)

	_, err = f.requests.Cancel(ctx, req.ID)
	require.NoError(t, err)

	_, err = f.requests.Update(ctx, req.ID, domain.UpdateRequestInput{Requirements: &notes})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestRequestService_Cancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	req := f.request(t, p, "Sovetsky")

	cancelled, err := f.requests.Cancel(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCancelled, cancelled.Status)
	f.waitEvent(t, domain.EventRequestCancelled)

	_, err = f.requests.Cancel(ctx, req.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestRequestService_Cancel_ConfirmedGoesThroughBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	b := f.babysitter(t, "Kazan", "Sovetsky")
	req := f.request(t, p, "Sovetsky")
	_, err := f.responses.Accept(ctx, f.candidate(t, req.ID, b.ID).ID)
	require.NoError(t, err)
	_, err = f.selection.Select(ctx, req.ID, b.ID)
	require.NoError(t, err)

	_, err = f.requests.Cancel(ctx, req.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, domain.RequestStatusConfirmed, f.requestStatus(t, req.ID))
}

func TestRequestService_ListByParent(t *testing.T) {
	f := newFixture(t)
	p := f.parent(t, "Kazan", "Sovetsky")
	other := f.parent(t, "Kazan", "Sovetsky")
	f.request(t, p, "Sovetsky")
	f.request(t, p, "Sovetsky")
	f.request(t, other, "Sovetsky")

	list, err := f.requests.ListByParent(context.Background(), p.ID)

	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRequestService_ExpireLapsed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.parent(t, "Kazan", "Sovetsky")
	future := f.request(t, p, "Sovetsky")

	now := time.Now().UTC()
	lapsed := &domain.Request{
		ID:           "11111111-1111-1111-1111-111111111111",
		ParentID:     p.ID,
		Start:        now.Add(-time.Hour),
		End:          now.Add(time.Hour),
		Area:         "Sovetsky",
		ChildrenAges: []int{3},
		Status:       domain.RequestStatusPendingSelection,
		CreatedAt:    now.Add(-24 * time.Hour),
		UpdatedAt:    now.Add(-24 * time.Hour),
	}
	require.NoError(t, f.store.Requests().Create(ctx, lapsed, nil))

	cancelled, err := f.requests.ExpireLapsed(ctx)

	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, lapsed.ID, cancelled[0].ID)
	assert.Equal(t, domain.RequestStatusCancelled, f.requestStatus(t, lapsed.ID))
	assert.Equal(t, domain.RequestStatusPendingResponses, f.requestStatus(t, future.ID))
	f.waitEvent(t, domain.EventRequestCancelled)
}

func TestRequestService_ExpireLapsed_SkipsLostRace(t *testing.T) {
	requests := mocks.NewMockRequestRepo(t)
	events := mocks.NewMockEventPublisher(t)
	log := newTestLogger(t)
	svc := NewRequestService(requests, nil, nil, nil, nil, events, log)

	r1 := &domain.Request{ID: "r1", Status: domain.RequestStatusPendingResponses}
	r2 := &domain.Request{ID: "r2", Status: domain.RequestStatusPendingSelection}

	requests.EXPECT().ListLapsed(mock.Anything, mock.Anything).Return([]*domain.Request{r1, r2}, nil)
	requests.EXPECT().UpdateStatus(mock.Anything, "r1", domain.RequestStatusPendingResponses, domain.RequestStatusCancelled).
		Return(&domain.StateError{Entity: "request", ID: "r1", Current: "CONFIRMED", Attempted: "cancel"})
	requests.EXPECT().UpdateStatus(mock.Anything, "r2", domain.RequestStatusPendingSelection, domain.RequestStatusCancelled).
		Return(nil)
	events.EXPECT().Publish(mock.Anything, mock.Anything).Return().Maybe()

	cancelled, err := svc.ExpireLapsed(context.Background())

	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, "r2", cancelled[0].ID)

	time.Sleep(50 * time.Millisecond) // goroutine publish
}

func TestRequestService_ExpireLapsed_StoreError(t *testing.T) {
	requests := mocks.NewMockRequestRepo(t)
	svc := NewRequestService(requests, nil, nil, nil, nil, nil, newTestLogger(t))

	requests.EXPECT().ListLapsed(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := svc.ExpireLapsed(context.Background())

	assert.Error(t, err)
}
