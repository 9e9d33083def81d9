package memory

import (
	"context"
	"sort"

	"github.com/stpnv0/SitterMatch/internal/domain"
)

type CatalogRepo struct {
	s *Store
}

func (r *CatalogRepo) CreateCity(_ context.Context, c *domain.City, hoods []*domain.Neighborhood) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := domain.CatalogKey(c.Name)
	for _, existing := range r.s.cities {
		if domain.CatalogKey(existing.Name) == key {
			return domain.ErrCityExists
		}
	}

	cp := *c
	r.s.cities[c.ID] = &cp
	list := make([]*domain.Neighborhood, 0, len(hoods))
	for _, n := range hoods {
		nc := *n
		list = append(list, &nc)
	}
	r.s.neighborhoods[c.ID] = list
	return nil
}

func (r *CatalogRepo) ListCities(_ context.Context) ([]*domain.City, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res := make([]*domain.City, 0, len(r.s.cities))
	for _, c := range r.s.cities {
		cp := *c
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Name != res[j].Name {
			return res[i].Name < res[j].Name
		}
		return res[i].ID < res[j].ID
	})
	return res, nil
}

func (r *CatalogRepo) GetCity(_ context.Context, id string) (*domain.City, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.cities[id]
	if !ok {
		return nil, domain.ErrCityNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *CatalogRepo) FindCity(_ context.Context, name string) (*domain.City, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := domain.CatalogKey(name)
	for _, c := range r.s.cities {
		if key != "" && domain.CatalogKey(c.Name) == key {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domain.ErrCityNotFound
}

func (r *CatalogRepo) ListNeighborhoods(_ context.Context, cityID string) ([]*domain.Neighborhood, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.cities[cityID]; !ok {
		return nil, domain.ErrCityNotFound
	}
	hoods := r.s.neighborhoods[cityID]
	res := make([]*domain.Neighborhood, 0, len(hoods))
	for _, n := range hoods {
		cp := *n
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}

func (r *CatalogRepo) CreateCommunityStyle(_ context.Context, st *domain.CommunityStyle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *st
	r.s.styles[st.ID] = &cp
	return nil
}

func (r *CatalogRepo) ListCommunityStyles(_ context.Context) ([]*domain.CommunityStyle, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res := make([]*domain.CommunityStyle, 0, len(r.s.styles))
	for _, st := range r.s.styles {
		cp := *st
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Label != res[j].Label {
			return res[i].Label < res[j].Label
		}
		return res[i].ID < res[j].ID
	})
	return res, nil
}

func (r *CatalogRepo) GetCommunityStyle(_ context.Context, id string) (*domain.CommunityStyle, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	st, ok := r.s.styles[id]
	if !ok {
		return nil, domain.ErrStyleNotFound
	}
	cp := *st
	return &cp, nil
}
