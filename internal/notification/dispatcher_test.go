package notification

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeBus struct {
	mu     sync.Mutex
	events []domain.Event
	err    error
}

func (b *fakeBus) Publish(_ context.Context, e domain.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
	return b.err
}

type fakeQueue struct {
	jobs []domain.CallJob
}

func (q *fakeQueue) EnqueueCall(_ context.Context, job domain.CallJob) error {
	q.jobs = append(q.jobs, job)
	return nil
}

// fakeMessenger records "<method>:<recipient>" per notice.
type fakeMessenger struct {
	sent []string
}

func (m *fakeMessenger) NotifyNewOffer(_ context.Context, b *domain.BabysitterProfile, _ *domain.Request) {
	m.sent = append(m.sent, "offer:"+b.ID)
}

func (m *fakeMessenger) NotifyGuardianApproval(_ context.Context, b *domain.BabysitterProfile, _ *domain.Request) {
	m.sent = append(m.sent, "guardian:"+b.ID)
}

func (m *fakeMessenger) NotifyCandidateResponse(_ context.Context, p *domain.ParentProfile, _ *domain.BabysitterProfile, _ *domain.Request, response domain.CandidateResponse) {
	m.sent = append(m.sent, "response:"+p.ID+":"+string(response))
}

func (m *fakeMessenger) NotifyRequestCancelled(_ context.Context, p *domain.ParentProfile, _ *domain.Request) {
	m.sent = append(m.sent, "cancelled:"+p.ID)
}

func (m *fakeMessenger) NotifyBooking(_ context.Context, chatID *int64, e domain.Event, _ *domain.Request) {
	id := "none"
	if chatID != nil {
		id = strconv.FormatInt(*chatID, 10)
	}
	m.sent = append(m.sent, string(e.Type)+":"+id)
}

type dispatcherFixture struct {
	d         *Dispatcher
	bus       *fakeBus
	queue     *fakeQueue
	messenger *fakeMessenger
	req       *domain.Request
}

func newDispatcherFixture(t *testing.T, opts ...Option) *dispatcherFixture {
	t.Helper()
	ctx := context.Background()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	store := memory.NewStore()
	parentChat, sitterChat := int64(1), int64(2)
	require.NoError(t, store.Profiles().CreateParent(ctx, &domain.ParentProfile{
		ID: "p1", Phone: "+7001", City: "Kazan", Neighborhood: "Sovetsky", TelegramChatID: &parentChat,
	}))
	require.NoError(t, store.Profiles().CreateBabysitter(ctx, &domain.BabysitterProfile{
		ID: "b1", FullName: "Анна", Phone: "+7002", City: "Kazan", Neighborhood: "Sovetsky", TelegramChatID: &sitterChat,
	}))

	start := time.Now().Add(24 * time.Hour).UTC()
	req := &domain.Request{
		ID: "r1", ParentID: "p1", Start: start, End: start.Add(2 * time.Hour),
		Area: "Sovetsky", Status: domain.RequestStatusPendingResponses,
	}
	require.NoError(t, store.Requests().Create(ctx, req, nil))

	f := &dispatcherFixture{
		bus:       &fakeBus{},
		queue:     &fakeQueue{},
		messenger: &fakeMessenger{},
		req:       req,
	}
	all := append([]Option{WithBus(f.bus), WithCallQueue(f.queue)}, opts...)
	f.d = NewDispatcher(store.Profiles(), store.Requests(), f.messenger, log, all...)
	return f
}

func TestDispatcher_CandidateCreated(t *testing.T) {
	f := newDispatcherFixture(t)

	e := domain.Event{Type: domain.EventCandidateCreated, RequestID: "r1", CandidateID: "c1", ParentID: "p1", BabysitterID: "b1"}
	f.d.Publish(context.Background(), e)

	assert.Equal(t, []domain.Event{e}, f.bus.events)
	assert.Equal(t, []string{"offer:b1"}, f.messenger.sent)
	require.Len(t, f.queue.jobs, 1)
	job := f.queue.jobs[0]
	assert.Equal(t, "c1", job.CandidateID)
	assert.Equal(t, "+7002", job.Phone)
	assert.Equal(t, "Анна", job.FullName)
	assert.Equal(t, "Sovetsky", job.Area)
	assert.True(t, job.DatetimeStart.Equal(f.req.Start))
}

func TestDispatcher_CallRequested_OnlyCalls(t *testing.T) {
	f := newDispatcherFixture(t)

	f.d.Publish(context.Background(), domain.Event{Type: domain.EventCallRequested, RequestID: "r1", CandidateID: "c1", BabysitterID: "b1"})

	assert.Empty(t, f.messenger.sent)
	assert.Len(t, f.queue.jobs, 1)
}

func TestDispatcher_BookingNotifiesBothParties(t *testing.T) {
	f := newDispatcherFixture(t)

	f.d.Publish(context.Background(), domain.Event{Type: domain.EventBookingConfirmed, RequestID: "r1", BookingID: "bk1", ParentID: "p1", BabysitterID: "b1"})

	assert.Equal(t, []string{"booking.confirmed:1", "booking.confirmed:2"}, f.messenger.sent)
	assert.Empty(t, f.queue.jobs)
}

func TestDispatcher_Responses(t *testing.T) {
	f := newDispatcherFixture(t)
	ctx := context.Background()

	f.d.Publish(ctx, domain.Event{Type: domain.EventGuardianRequested, RequestID: "r1", CandidateID: "c1", ParentID: "p1", BabysitterID: "b1"})
	f.d.Publish(ctx, domain.Event{Type: domain.EventCandidateResponse, RequestID: "r1", CandidateID: "c1", ParentID: "p1", BabysitterID: "b1", Status: "INTERESTED"})
	f.d.Publish(ctx, domain.Event{Type: domain.EventRequestCancelled, RequestID: "r1", ParentID: "p1"})

	assert.Equal(t, []string{
		"guardian:b1",
		"response:p1:GUARDIAN_PENDING",
		"response:p1:INTERESTED",
		"cancelled:p1",
	}, f.messenger.sent)
}

func TestDispatcher_MissingProfileSkipsDelivery(t *testing.T) {
	f := newDispatcherFixture(t)

	f.d.Publish(context.Background(), domain.Event{Type: domain.EventCandidateCreated, RequestID: "r1", CandidateID: "c1", BabysitterID: "ghost"})

	assert.Len(t, f.bus.events, 1)
	assert.Empty(t, f.messenger.sent)
	assert.Empty(t, f.queue.jobs)
}

func TestDispatcher_BusFailureDoesNotBlockNotices(t *testing.T) {
	f := newDispatcherFixture(t)
	f.bus.err = errors.New("redis down")

	f.d.Publish(context.Background(), domain.Event{Type: domain.EventRequestCancelled, RequestID: "r1", ParentID: "p1"})

	assert.Equal(t, []string{"cancelled:p1"}, f.messenger.sent)
}

func TestDispatcher_WithoutBrokers(t *testing.T) {
	f := newDispatcherFixture(t, WithBus(nil), WithCallQueue(nil))

	f.d.Publish(context.Background(), domain.Event{Type: domain.EventCandidateCreated, RequestID: "r1", CandidateID: "c1", BabysitterID: "b1"})

	assert.Empty(t, f.bus.events)
	assert.Empty(t, f.queue.jobs)
	assert.Equal(t, []string{"offer:b1"}, f.messenger.sent)
}
