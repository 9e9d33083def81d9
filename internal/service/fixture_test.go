package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/repository/memory"
	"github.com/stpnv0/SitterMatch/internal/service/ports/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// fixture wires every service over one in-memory store. Published events are
// copied to the published channel.
type fixture struct {
	store     *memory.Store
	published chan domain.Event

	requests  *RequestService
	responses *ResponseService
	selection *SelectionService
	bookings  *BookingService
	telephony *TelephonyService
	profiles  *ProfileService
	catalog   *CatalogService
}

var phoneSeq atomic.Int64

var testCities = []domain.CreateCityInput{
	{Name: "Kazan", Neighborhoods: []string{"Sovetsky", "Privolzhsky", "Vakhitovsky", "Kirovsky", "Aviastroitelny"}},
	{Name: "Moscow", Neighborhoods: []string{"Sovetsky", "Arbat"}},
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := newTestLogger(t)
	store := memory.NewStore()

	f := &fixture{store: store, published: make(chan domain.Event, 256)}

	events := mocks.NewMockEventPublisher(t)
	events.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e domain.Event) {
			select {
			case f.published <- e:
			default:
			}
		}).
		Return().
		Maybe()

	requests, candidates, bookings, profiles, catalog := store.Requests(), store.Candidates(), store.Bookings(), store.Profiles(), store.Catalog()

	f.catalog = NewCatalogService(catalog, log)
	require.NoError(t, f.catalog.Seed(context.Background(), testCities, nil))

	matcher := NewMatcher(profiles, log)
	f.requests = NewRequestService(requests, candidates, profiles, catalog, matcher, events, log)
	f.responses = NewResponseService(candidates, requests, profiles, events, log)
	f.selection = NewSelectionService(requests, candidates, bookings, events, log)
	f.bookings = NewBookingService(bookings, events, log)
	f.telephony = NewTelephonyService(candidates, requests, f.responses, events, log)
	f.profiles = NewProfileService(profiles, catalog, log)

	return f
}

func nextPhone() string {
	return fmt.Sprintf("+7999%07d", phoneSeq.Add(1))
}

func (f *fixture) parent(t *testing.T, city, neighborhood string) *domain.ParentProfile {
	t.Helper()
	p, err := f.profiles.CreateParent(context.Background(), domain.CreateParentInput{
		FullName:     "Мария",
		Phone:        nextPhone(),
		City:         city,
		Neighborhood: neighborhood,
		Address:      "ул. Пушкина, 10",
		ChildrenAges: []int{4},
	})
	require.NoError(t, err)
	return p
}

type sitterOpt func(*domain.CreateBabysitterInput)

func withAreas(areas ...string) sitterOpt {
	return func(in *domain.CreateBabysitterInput) { in.ServiceAreas = areas }
}

func withGuardian() sitterOpt {
	return func(in *domain.CreateBabysitterInput) {
		in.GuardianRequiredApproval = true
		in.GuardianPhone = nextPhone()
	}
}

func (f *fixture) babysitter(t *testing.T, city, neighborhood string, opts ...sitterOpt) *domain.BabysitterProfile {
	t.Helper()
	in := domain.CreateBabysitterInput{
		FullName:     "Анна",
		Phone:        nextPhone(),
		Age:          20,
		City:         city,
		Neighborhood: neighborhood,
	}
	for _, opt := range opts {
		opt(&in)
	}
	b, err := f.profiles.CreateBabysitter(context.Background(), in)
	require.NoError(t, err)
	return b
}

func (f *fixture) request(t *testing.T, p *domain.ParentProfile, area string) *domain.Request {
	t.Helper()
	start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Minute)
	r, err := f.requests.Create(context.Background(), domain.CreateRequestInput{
		ParentID:     p.ID,
		Start:        start,
		End:          start.Add(4 * time.Hour),
		Area:         area,
		Address:      "ул. Пушкина, 10",
		ChildrenAges: []int{4},
	})
	require.NoError(t, err)
	return r
}

func (f *fixture) candidate(t *testing.T, requestID, babysitterID string) *domain.Candidate {
	t.Helper()
	c, err := f.store.Candidates().GetByRequestAndBabysitter(context.Background(), requestID, babysitterID)
	require.NoError(t, err)
	return c
}

func (f *fixture) requestStatus(t *testing.T, id string) domain.RequestStatus {
	t.Helper()
	r, err := f.store.Requests().GetByID(context.Background(), id)
	require.NoError(t, err)
	return r.Status
}

// waitEvent blocks until an event of type typ is published.
func (f *fixture) waitEvent(t *testing.T, typ domain.EventType) domain.Event {
	t.Helper()
	timeout := time.After(time.Second)
	for {
		select {
		case e := <-f.published:
			if e.Type == typ {
				return e
			}
		case <-timeout:
			t.Fatalf("event %s was not published", typ)
			return domain.Event{}
		}
	}
}
