// Package matching holds the geographic eligibility rule used to turn a
// request into candidates.
//
// A babysitter is eligible when they live in the parent's city and at least
// one of the following holds:
//
//	1. their neighborhood equals the parent's neighborhood
//	2. the parent's neighborhood is one of their service areas
//	3. the request's area is one of their service areas
//
// Text comparison is case-insensitive after trimming; there is no geocoding.
package matching

import (
	"strings"

	"github.com/stpnv0/SitterMatch/internal/domain"
)

// Eligible reports whether b may be offered r posted by p.
func Eligible(p *domain.ParentProfile, r *domain.Request, b *domain.BabysitterProfile) bool {
	if !same(p.City, b.City) {
		return false
	}
	if !withinAgeBounds(r, b) {
		return false
	}
	return same(b.Neighborhood, p.Neighborhood) ||
		servesArea(b, p.Neighborhood) ||
		servesArea(b, r.Area)
}

// Filter returns the eligible babysitters in input order, dropping repeated
// profiles.
func Filter(p *domain.ParentProfile, r *domain.Request, pool []*domain.BabysitterProfile) []*domain.BabysitterProfile {
	seen := make(map[string]struct{}, len(pool))
	res := make([]*domain.BabysitterProfile, 0, len(pool))
	for _, b := range pool {
		if _, dup := seen[b.ID]; dup {
			continue
		}
		if Eligible(p, r, b) {
			seen[b.ID] = struct{}{}
			res = append(res, b)
		}
	}
	return res
}

// SameCity is exported for stores that pre-filter by city.
func SameCity(a, b string) bool { return same(a, b) }

func withinAgeBounds(r *domain.Request, b *domain.BabysitterProfile) bool {
	if r.MinBabysitterAge != nil && b.Age < *r.MinBabysitterAge {
		return false
	}
	if r.MaxBabysitterAge != nil && b.Age > *r.MaxBabysitterAge {
		return false
	}
	return true
}

func servesArea(b *domain.BabysitterProfile, area string) bool {
	if normalize(area) == "" {
		return false
	}
	for _, sa := range b.ServiceAreas {
		if same(sa, area) {
			return true
		}
	}
	return false
}

func same(a, b string) bool {
	na, nb := normalize(a), normalize(b)
	return na != "" && na == nb
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
