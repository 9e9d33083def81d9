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

func TestCatalogService_CreateCity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.catalog.CreateCity(ctx, domain.CreateCityInput{Name: " Innopolis ", Neighborhoods: []string{"Center", " Campus"}})
	require.NoError(t, err)
	assert.Equal(t, "Innopolis", c.Name)

	hoods, err := f.catalog.ListNeighborhoods(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, hoods, 2)
	assert.Equal(t, "Campus", hoods[0].Name)
	assert.Equal(t, c.ID, hoods[0].CityID)

	_, err = f.catalog.CreateCity(ctx, domain.CreateCityInput{Name: "innopolis"})
	assert.ErrorIs(t, err, domain.ErrCityExists)
	assert.True(t, domain.IsConflict(err))
}

func TestCatalogService_CreateCity_Invalid(t *testing.T) {
	svc := NewCatalogService(mocks.NewMockCatalogRepo(t), newTestLogger(t))

	_, err := svc.CreateCity(context.Background(), domain.CreateCityInput{Name: " "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateCity(context.Background(), domain.CreateCityInput{Name: "Kazan", Neighborhoods: []string{"A", " a "}})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_ListNeighborhoods_UnknownCity(t *testing.T) {
	f := newFixture(t)

	_, err := f.catalog.ListNeighborhoods(context.Background(), "00000000-0000-0000-0000-000000000000")

	assert.True(t, domain.IsNotFound(err))
}

func TestCatalogService_SeedIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	styles := []domain.CreateCommunityStyleInput{{Label: "Secular"}, {Label: "Traditional"}}

	require.NoError(t, f.catalog.Seed(ctx, testCities, styles))
	require.NoError(t, f.catalog.Seed(ctx, testCities, styles))

	cities, err := f.catalog.ListCities(ctx)
	require.NoError(t, err)
	assert.Len(t, cities, len(testCities))

	got, err := f.catalog.ListCommunityStyles(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Secular", got[0].Label)
}

func TestProfileService_RejectsUnknownGeography(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input domain.CreateBabysitterInput
	}{
		{
			name:  "unknown city",
			input: domain.CreateBabysitterInput{City: "Atlantis", Neighborhood: "Sovetsky"},
		},
		{
			name:  "neighborhood of another city",
			input: domain.CreateBabysitterInput{City: "Kazan", Neighborhood: "Arbat"},
		},
		{
			name:  "unknown service area",
			input: domain.CreateBabysitterInput{City: "Kazan", Neighborhood: "Sovetsky", ServiceAreas: []string{"Kirovsky", "Nowhere"}},
		},
		{
			name:  "unknown community style",
			input: domain.CreateBabysitterInput{City: "Kazan", Neighborhood: "Sovetsky", CommunityStyleID: "missing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.input
			in.FullName, in.Phone, in.Age = "Анна", nextPhone(), 20

			_, err := f.profiles.CreateBabysitter(ctx, in)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	_, err := f.profiles.CreateParent(ctx, domain.CreateParentInput{
		FullName: "Мария", Phone: nextPhone(), City: "Kazan", Neighborhood: "Центр",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProfileService_AcceptsKnownStyle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	st, err := f.catalog.CreateCommunityStyle(ctx, domain.CreateCommunityStyleInput{Label: "Secular"})
	require.NoError(t, err)

	b, err := f.profiles.CreateBabysitter(ctx, domain.CreateBabysitterInput{
		FullName: "Анна", Phone: nextPhone(), Age: 20, City: "kazan", Neighborhood: "SOVETSKY", CommunityStyleID: st.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, st.ID, b.CommunityStyleID)
}

func TestRequestService_Create_UnknownArea(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.parent(t, "Kazan", "Sovetsky")
	f.babysitter(t, "Kazan", "Sovetsky")
	start := time.Now().Add(time.Hour)

	for _, area := range []string{"Atlantis", "Arbat"} {
		_, err := f.requests.Create(ctx, domain.CreateRequestInput{
			ParentID:     p.ID,
			Start:        start,
			End:          start.Add(time.Hour),
			Area:         area,
			ChildrenAges: []int{2},
		})
		assert.ErrorIs(t, err, domain.ErrValidation, area)
	}

	_, err := f.requests.Create(ctx, domain.CreateRequestInput{
		ParentID:         p.ID,
		Start:            start,
		End:              start.Add(time.Hour),
		Area:             "Sovetsky",
		ChildrenAges:     []int{2},
		CommunityStyleID: "missing",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	all, err := f.requests.ListByParent(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, all, "rejected requests are not stored")
}

func TestCheckLocation_StoreError(t *testing.T) {
	catalog := mocks.NewMockCatalogRepo(t)
	catalog.EXPECT().FindCity(mock.Anything, "Kazan").Return(nil, errors.New("connection reset"))

	err := checkLocation(context.Background(), catalog, "Kazan", "Sovetsky")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}
