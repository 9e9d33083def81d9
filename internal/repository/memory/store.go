// Package memory is an in-process implementation of the service ports. All
// views of one Store share a single lock, so every method is atomic with
// respect to every other.
package memory

import (
	"sync"

	"github.com/stpnv0/SitterMatch/internal/domain"
)

type Store struct {
	mu sync.Mutex

	requests    map[string]*domain.Request
	candidates  map[string]*domain.Candidate
	byRequest   map[string][]string
	bookings    map[string]*domain.Booking
	parents     map[string]*domain.ParentProfile
	babysitters map[string]*domain.BabysitterProfile
	// insertion order of babysitters, so matching is deterministic
	sitterOrder []string

	cities        map[string]*domain.City
	neighborhoods map[string][]*domain.Neighborhood
	styles        map[string]*domain.CommunityStyle
}

func NewStore() *Store {
	return &Store{
		requests:    make(map[string]*domain.Request),
		candidates:  make(map[string]*domain.Candidate),
		byRequest:   make(map[string][]string),
		bookings:    make(map[string]*domain.Booking),
		parents:     make(map[string]*domain.ParentProfile),
		babysitters: make(map[string]*domain.BabysitterProfile),

		cities:        make(map[string]*domain.City),
		neighborhoods: make(map[string][]*domain.Neighborhood),
		styles:        make(map[string]*domain.CommunityStyle),
	}
}

func (s *Store) Requests() *RequestRepo { return &RequestRepo{s: s} }

func (s *Store) Candidates() *CandidateRepo { return &CandidateRepo{s: s} }

func (s *Store) Bookings() *BookingRepo { return &BookingRepo{s: s} }

func (s *Store) Profiles() *ProfileRepo { return &ProfileRepo{s: s} }

func (s *Store) Catalog() *CatalogRepo { return &CatalogRepo{s: s} }

func cloneRequest(r *domain.Request) *domain.Request {
	c := *r
	c.ChildrenAges = append([]int(nil), r.ChildrenAges...)
	c.MinBabysitterAge = cloneInt(r.MinBabysitterAge)
	c.MaxBabysitterAge = cloneInt(r.MaxBabysitterAge)
	return &c
}

func cloneCandidate(c *domain.Candidate) *domain.Candidate {
	cp := *c
	cp.BabysitterRespondedAt = cloneTime(c.BabysitterRespondedAt)
	cp.GuardianRespondedAt = cloneTime(c.GuardianRespondedAt)
	return &cp
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	c := *b
	c.StartedAt = cloneTime(b.StartedAt)
	c.CompletedAt = cloneTime(b.CompletedAt)
	c.CancelledAt = cloneTime(b.CancelledAt)
	c.ParentRating = cloneInt(b.ParentRating)
	c.BabysitterRating = cloneInt(b.BabysitterRating)
	return &c
}

func cloneParent(p *domain.ParentProfile) *domain.ParentProfile {
	c := *p
	c.ChildrenAges = append([]int(nil), p.ChildrenAges...)
	c.TelegramChatID = cloneInt64(p.TelegramChatID)
	return &c
}

func cloneBabysitter(b *domain.BabysitterProfile) *domain.BabysitterProfile {
	c := *b
	c.ServiceAreas = append([]string(nil), b.ServiceAreas...)
	c.TelegramChatID = cloneInt64(b.TelegramChatID)
	c.GuardianTelegramChatID = cloneInt64(b.GuardianTelegramChatID)
	return &c
}
