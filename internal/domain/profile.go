package domain

import (
	"fmt"
	"strings"
	"time"
)

type ParentProfile struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone"`
	City           string    `json:"city"`
	Neighborhood   string    `json:"neighborhood"`
	Address        string    `json:"address,omitempty"`
	ChildrenAges   []int     `json:"children_ages"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// HasGeography reports whether the profile can anchor matching.
func (p *ParentProfile) HasGeography() bool {
	return strings.TrimSpace(p.City) != "" && strings.TrimSpace(p.Neighborhood) != ""
}

type BabysitterProfile struct {
	ID                       string    `json:"id"`
	FullName                 string    `json:"full_name"`
	Phone                    string    `json:"phone"`
	Age                      int       `json:"age"`
	City                     string    `json:"city"`
	Neighborhood             string    `json:"neighborhood"`
	ServiceAreas             []string  `json:"service_areas"`
	GuardianRequiredApproval bool      `json:"guardian_required_approval"`
	GuardianPhone            string    `json:"guardian_phone,omitempty"`
	GuardianTelegramChatID   *int64    `json:"guardian_telegram_chat_id,omitempty"`
	CommunityStyleID         string    `json:"community_style_id,omitempty"`
	TelegramChatID           *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
}

type CreateParentInput struct {
	FullName       string
	Phone          string
	City           string
	Neighborhood   string
	Address        string
	ChildrenAges   []int
	TelegramChatID *int64
}

func (in CreateParentInput) Validate() error {
	if strings.TrimSpace(in.FullName) == "" {
		return fmt.Errorf("%w: full_name is required", ErrValidation)
	}
	if strings.TrimSpace(in.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if strings.TrimSpace(in.City) == "" || strings.TrimSpace(in.Neighborhood) == "" {
		return fmt.Errorf("%w: city and neighborhood are required", ErrValidation)
	}
	for _, a := range in.ChildrenAges {
		if a < 0 {
			return fmt.Errorf("%w: children_ages must not contain negative values", ErrValidation)
		}
	}
	return nil
}

type CreateBabysitterInput struct {
	FullName                 string
	Phone                    string
	Age                      int
	City                     string
	Neighborhood             string
	ServiceAreas             []string
	GuardianRequiredApproval bool
	GuardianPhone            string
	GuardianTelegramChatID   *int64
	CommunityStyleID         string
	TelegramChatID           *int64
}

func (in CreateBabysitterInput) Validate() error {
	if strings.TrimSpace(in.FullName) == "" {
		return fmt.Errorf("%w: full_name is required", ErrValidation)
	}
	if strings.TrimSpace(in.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if in.Age <= 0 {
		return fmt.Errorf("%w: age must be positive", ErrValidation)
	}
	if strings.TrimSpace(in.City) == "" || strings.TrimSpace(in.Neighborhood) == "" {
		return fmt.Errorf("%w: city and neighborhood are required", ErrValidation)
	}
	if in.GuardianRequiredApproval && strings.TrimSpace(in.GuardianPhone) == "" {
		return fmt.Errorf("%w: guardian_phone is required when guardian approval is required", ErrValidation)
	}
	return nil
}
