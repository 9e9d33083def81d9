package matching

import (
	"testing"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEligible(t *testing.T) {
	parent := &domain.ParentProfile{City: "Kazan", Neighborhood: "Sovetsky"}
	req := &domain.Request{Area: "Vakhitovsky"}
	age := func(v int) *int { return &v }

	tests := []struct {
		name string
		b    domain.BabysitterProfile
		r    *domain.Request
		want bool
	}{
		{
			name: "same neighborhood",
			b:    domain.BabysitterProfile{City: "Kazan", Neighborhood: "Sovetsky"},
			want: true,
		},
		{
			name: "case and whitespace ignored",
			b:    domain.BabysitterProfile{City: " kazan ", Neighborhood: "SOVETSKY"},
			want: true,
		},
		{
			name: "serves parent neighborhood",
			b:    domain.BabysitterProfile{City: "Kazan", Neighborhood: "Aviastroitelny", ServiceAreas: []string{"sovetsky"}},
			want: true,
		},
		{
			name: "serves request area",
			b:    domain.BabysitterProfile{City: "Kazan", Neighborhood: "Aviastroitelny", ServiceAreas: []string{"Vakhitovsky"}},
			want: true,
		},
		{
			name: "other city never matches",
			b:    domain.BabysitterProfile{City: "Moscow", Neighborhood: "Sovetsky", ServiceAreas: []string{"Vakhitovsky"}},
			want: false,
		},
		{
			name: "same city, no area overlap",
			b:    domain.BabysitterProfile{City: "Kazan", Neighborhood: "Privolzhsky", ServiceAreas: []string{"Kirovsky"}},
			want: false,
		},
		{
			name: "empty area never matches",
			b:    domain.BabysitterProfile{City: "Kazan", Neighborhood: "Privolzhsky", ServiceAreas: []string{""}},
			r:    &domain.Request{Area: " "},
			want: false,
		},
		{
			name: "below minimum age",
			b:    domain.BabysitterProfile{City: "Kazan", Neighborhood: "Sovetsky", Age: 16},
			r:    &domain.Request{Area: "Vakhitovsky", MinBabysitterAge: age(18)},
			want: false,
		},
		{
			name: "above maximum age",
			b:    domain.BabysitterProfile{City: "Kazan", Neighborhood: "Sovetsky", Age: 40},
			r:    &domain.Request{Area: "Vakhitovsky", MaxBabysitterAge: age(35)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := req
			if tt.r != nil {
				r = tt.r
			}
			b := tt.b
			assert.Equal(t, tt.want, Eligible(parent, r, &b))
		})
	}
}

func TestEligible_EmptyParentNeighborhood(t *testing.T) {
	parent := &domain.ParentProfile{City: "Kazan", Neighborhood: ""}
	b := &domain.BabysitterProfile{City: "Kazan", Neighborhood: "", ServiceAreas: []string{""}}

	assert.False(t, Eligible(parent, &domain.Request{Area: "Center"}, b))
}

func TestFilter_KeepsOrderAndDropsRepeats(t *testing.T) {
	parent := &domain.ParentProfile{City: "Kazan", Neighborhood: "Sovetsky"}
	req := &domain.Request{Area: "Sovetsky"}

	a := &domain.BabysitterProfile{ID: "a", City: "Kazan", Neighborhood: "Sovetsky"}
	b := &domain.BabysitterProfile{ID: "b", City: "Moscow", Neighborhood: "Sovetsky"}
	c := &domain.BabysitterProfile{ID: "c", City: "Kazan", Neighborhood: "Other", ServiceAreas: []string{"sovetsky"}}

	got := Filter(parent, req, []*domain.BabysitterProfile{c, a, b, a})

	assert.Equal(t, []*domain.BabysitterProfile{c, a}, got)
}

func TestSameCity(t *testing.T) {
	assert.True(t, SameCity("Kazan", " KAZAN"))
	assert.False(t, SameCity("", ""))
}
