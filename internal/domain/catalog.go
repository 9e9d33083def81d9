package domain

import (
	"fmt"
	"strings"
)

type City struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Neighborhood struct {
	ID     string `json:"id"`
	CityID string `json:"city_id"`
	Name   string `json:"name"`
}

type CommunityStyle struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

type CreateCityInput struct {
	Name          string
	Neighborhoods []string
}

func (in CreateCityInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	seen := make(map[string]struct{}, len(in.Neighborhoods))
	for _, n := range in.Neighborhoods {
		key := CatalogKey(n)
		if key == "" {
			return fmt.Errorf("%w: neighborhood name must not be empty", ErrValidation)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: neighborhood %q is listed twice", ErrValidation, n)
		}
		seen[key] = struct{}{}
	}
	return nil
}

type CreateCommunityStyleInput struct {
	Label       string
	Description string
}

func (in CreateCommunityStyleInput) Validate() error {
	if strings.TrimSpace(in.Label) == "" {
		return fmt.Errorf("%w: label is required", ErrValidation)
	}
	return nil
}

// CatalogKey is the form catalog names are compared in. It matches the
// normalization the matcher uses, so a name the catalog accepts also matches.
func CatalogKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// HasNeighborhood reports whether name is one of hoods.
func HasNeighborhood(hoods []*Neighborhood, name string) bool {
	key := CatalogKey(name)
	if key == "" {
		return false
	}
	for _, n := range hoods {
		if CatalogKey(n.Name) == key {
			return true
		}
	}
	return false
}
