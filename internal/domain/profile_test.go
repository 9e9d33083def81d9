package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateBabysitterInput_Validate(t *testing.T) {
	base := CreateBabysitterInput{
		FullName:     "Анна",
		Phone:        "+79990000001",
		Age:          17,
		City:         "Казань",
		Neighborhood: "Вахитовский",
	}
	assert.NoError(t, base.Validate())

	noGuardianPhone := base
	noGuardianPhone.GuardianRequiredApproval = true
	assert.ErrorIs(t, noGuardianPhone.Validate(), ErrValidation)

	withGuardian := noGuardianPhone
	withGuardian.GuardianPhone = "+79990000002"
	assert.NoError(t, withGuardian.Validate())

	noAge := base
	noAge.Age = 0
	assert.ErrorIs(t, noAge.Validate(), ErrValidation)

	noCity := base
	noCity.City = " "
	assert.ErrorIs(t, noCity.Validate(), ErrValidation)
}

func TestCreateParentInput_Validate(t *testing.T) {
	in := CreateParentInput{FullName: "Ольга", Phone: "+79990000003", City: "Казань", Neighborhood: "Ново-Савиновский"}
	assert.NoError(t, in.Validate())

	in.ChildrenAges = []int{-2}
	assert.ErrorIs(t, in.Validate(), ErrValidation)

	p := &ParentProfile{City: "Казань", Neighborhood: ""}
	assert.False(t, p.HasGeography())
}

func TestHasNeighborhood(t *testing.T) {
	hoods := []*Neighborhood{{Name: "Sovetsky"}, {Name: "Вахитовский"}}

	assert.True(t, HasNeighborhood(hoods, " sovetsky "))
	assert.True(t, HasNeighborhood(hoods, "ВАХИТОВСКИЙ"))
	assert.False(t, HasNeighborhood(hoods, "Arbat"))
	assert.False(t, HasNeighborhood(hoods, "  "))
	assert.False(t, HasNeighborhood(nil, "Sovetsky"))
}
