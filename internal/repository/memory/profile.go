package memory

import (
	"context"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/matching"
)

type ProfileRepo struct {
	s *Store
}

func (r *ProfileRepo) CreateParent(_ context.Context, p *domain.ParentProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.parents {
		if existing.Phone == p.Phone {
			return domain.ErrPhoneTaken
		}
	}
	r.s.parents[p.ID] = cloneParent(p)
	return nil
}

func (r *ProfileRepo) GetParent(_ context.Context, id string) (*domain.ParentProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.parents[id]
	if !ok {
		return nil, domain.ErrParentNotFound
	}
	return cloneParent(p), nil
}

func (r *ProfileRepo) CreateBabysitter(_ context.Context, b *domain.BabysitterProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.babysitters {
		if existing.Phone == b.Phone {
			return domain.ErrPhoneTaken
		}
	}
	r.s.babysitters[b.ID] = cloneBabysitter(b)
	r.s.sitterOrder = append(r.s.sitterOrder, b.ID)
	return nil
}

func (r *ProfileRepo) GetBabysitter(_ context.Context, id string) (*domain.BabysitterProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.babysitters[id]
	if !ok {
		return nil, domain.ErrBabysitterNotFound
	}
	return cloneBabysitter(b), nil
}

func (r *ProfileRepo) ListBabysittersByCity(_ context.Context, city string) ([]*domain.BabysitterProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var res []*domain.BabysitterProfile
	for _, id := range r.s.sitterOrder {
		if b := r.s.babysitters[id]; matching.SameCity(b.City, city) {
			res = append(res, cloneBabysitter(b))
		}
	}
	return res, nil
}

// GetBabysitters returns the profiles found; unknown ids are left out.
func (r *ProfileRepo) GetBabysitters(_ context.Context, ids []string) (map[string]*domain.BabysitterProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res := make(map[string]*domain.BabysitterProfile, len(ids))
	for _, id := range ids {
		if b, ok := r.s.babysitters[id]; ok {
			res[id] = cloneBabysitter(b)
		}
	}
	return res, nil
}
