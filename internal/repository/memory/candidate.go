package memory

import (
	"context"
	"sort"

	"github.com/stpnv0/SitterMatch/internal/domain"
)

type CandidateRepo struct {
	s *Store
}

func (r *CandidateRepo) InsertMissing(_ context.Context, candidates []*domain.Candidate) ([]*domain.Candidate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	inserted := make([]*domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := r.s.requests[c.RequestID]; !ok {
			return nil, domain.ErrRequestNotFound
		}
		if r.s.findLocked(c.RequestID, c.BabysitterID) != nil {
			continue
		}
		r.s.candidates[c.ID] = cloneCandidate(c)
		r.s.byRequest[c.RequestID] = append(r.s.byRequest[c.RequestID], c.ID)
		inserted = append(inserted, c)
	}
	return inserted, nil
}

func (r *CandidateRepo) GetByID(_ context.Context, id string) (*domain.Candidate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.candidates[id]
	if !ok {
		return nil, domain.ErrCandidateNotFound
	}
	return cloneCandidate(c), nil
}

func (r *CandidateRepo) GetByRequestAndBabysitter(_ context.Context, requestID, babysitterID string) (*domain.Candidate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := r.s.findLocked(requestID, babysitterID)
	if c == nil {
		return nil, domain.ErrCandidateNotFound
	}
	return cloneCandidate(c), nil
}

func (r *CandidateRepo) ListByRequest(_ context.Context, requestID string) ([]*domain.Candidate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := r.s.byRequest[requestID]
	res := make([]*domain.Candidate, 0, len(ids))
	for _, id := range ids {
		res = append(res, cloneCandidate(r.s.candidates[id]))
	}
	return res, nil
}

// ListPendingByBabysitter skips candidates of requests that are no longer open.
func (r *CandidateRepo) ListPendingByBabysitter(_ context.Context, babysitterID string) ([]*domain.Candidate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var res []*domain.Candidate
	for reqID, ids := range r.s.byRequest {
		req := r.s.requests[reqID]
		if req == nil || !req.Status.IsOpen() {
			continue
		}
		for _, id := range ids {
			c := r.s.candidates[id]
			if c.BabysitterID == babysitterID && c.Response == domain.ResponsePending {
				res = append(res, cloneCandidate(c))
			}
		}
	}
	sortByCreated(res)
	return res, nil
}

func (r *CandidateRepo) UpdateResponse(_ context.Context, ch domain.ResponseChange) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.candidates[ch.CandidateID]
	if !ok {
		return domain.ErrCandidateNotFound
	}
	req, ok := r.s.requests[c.RequestID]
	if !ok {
		return domain.ErrRequestNotFound
	}
	if !req.Status.IsOpen() {
		return req.StateError("respond to candidate " + c.ID)
	}
	if c.Response != ch.From {
		return &domain.StateError{
			Entity:    "candidate",
			ID:        c.ID,
			Current:   string(c.Response),
			Attempted: "move to " + string(ch.To),
		}
	}

	c.ApplyResponse(ch)
	return nil
}

func (r *CandidateRepo) UpdateCall(_ context.Context, ch domain.CallChange) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.candidates[ch.CandidateID]
	if !ok {
		return domain.ErrCandidateNotFound
	}
	req, ok := r.s.requests[c.RequestID]
	if !ok {
		return domain.ErrRequestNotFound
	}
	if !req.Status.IsOpen() && !r.s.bookedLocked(req.ID, c.BabysitterID) {
		return req.StateError("update call for candidate " + c.ID)
	}
	if c.CallStatus != ch.From {
		return c.CallStateError("move to " + string(ch.To))
	}

	c.ApplyCall(ch)
	return nil
}

func (s *Store) findLocked(requestID, babysitterID string) *domain.Candidate {
	for _, id := range s.byRequest[requestID] {
		if c := s.candidates[id]; c.BabysitterID == babysitterID {
			return c
		}
	}
	return nil
}

func (s *Store) bookedLocked(requestID, babysitterID string) bool {
	for _, b := range s.bookings {
		if b.RequestID == requestID && b.BabysitterID == babysitterID {
			return true
		}
	}
	return false
}

func sortByCreated(cs []*domain.Candidate) {
	sort.Slice(cs, func(i, j int) bool {
		if !cs[i].CreatedAt.Equal(cs[j].CreatedAt) {
			return cs[i].CreatedAt.Before(cs[j].CreatedAt)
		}
		return cs[i].ID < cs[j].ID
	})
}
