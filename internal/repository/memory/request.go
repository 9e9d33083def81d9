package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/stpnv0/SitterMatch/internal/domain"
)

type RequestRepo struct {
	s *Store
}

func (r *RequestRepo) Create(_ context.Context, req *domain.Request, candidates []*domain.Candidate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.parents[req.ParentID]; !ok {
		return domain.ErrParentNotFound
	}
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c.BabysitterID]; dup {
			return fmt.Errorf("%w: babysitter %s", domain.ErrDuplicateCandidate, c.BabysitterID)
		}
		seen[c.BabysitterID] = struct{}{}
	}

	r.s.requests[req.ID] = cloneRequest(req)
	for _, c := range candidates {
		r.s.candidates[c.ID] = cloneCandidate(c)
		r.s.byRequest[req.ID] = append(r.s.byRequest[req.ID], c.ID)
	}
	return nil
}

func (r *RequestRepo) GetByID(_ context.Context, id string) (*domain.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	return cloneRequest(req), nil
}

func (r *RequestRepo) ListByParent(_ context.Context, parentID string) ([]*domain.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var res []*domain.Request
	for _, req := range r.s.requests {
		if req.ParentID == parentID {
			res = append(res, cloneRequest(req))
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.After(res[j].CreatedAt)
		}
		return res[i].ID > res[j].ID
	})
	return res, nil
}

func (r *RequestRepo) Update(_ context.Context, req *domain.Request) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.requests[req.ID]
	if !ok {
		return domain.ErrRequestNotFound
	}
	if cur.Status.IsTerminal() {
		return cur.StateError("update")
	}

	cur.Address = req.Address
	cur.Requirements = req.Requirements
	cur.ChildrenAges = append([]int(nil), req.ChildrenAges...)
	cur.UpdatedAt = req.UpdatedAt
	return nil
}

func (r *RequestRepo) UpdateStatus(_ context.Context, id string, from, to domain.RequestStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.requests[id]
	if !ok {
		return domain.ErrRequestNotFound
	}
	if cur.Status != from || !from.CanMoveTo(to) {
		return cur.StateError("move to " + string(to))
	}

	cur.Status = to
	cur.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *RequestRepo) ListLapsed(_ context.Context, now time.Time) ([]*domain.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var res []*domain.Request
	for _, req := range r.s.requests {
		if req.Status.IsOpen() && req.Start.Before(now) {
			res = append(res, cloneRequest(req))
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].Start.Equal(res[j].Start) {
			return res[i].Start.Before(res[j].Start)
		}
		return res[i].ID < res[j].ID
	})
	return res, nil
}
