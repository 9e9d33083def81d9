package domain

import (
	"fmt"
	"strings"
	"time"
)

type RequestStatus string

const (
	RequestStatusNew              RequestStatus = "NEW"
	RequestStatusMatching         RequestStatus = "MATCHING"
	RequestStatusPendingResponses RequestStatus = "PENDING_RESPONSES"
	RequestStatusPendingSelection RequestStatus = "PENDING_SELECTION"
	RequestStatusPendingPayment   RequestStatus = "PENDING_PAYMENT"
	RequestStatusConfirmed        RequestStatus = "CONFIRMED"
	RequestStatusCompleted        RequestStatus = "COMPLETED"
	RequestStatusCancelled        RequestStatus = "CANCELLED"
)

// OpenRequestStatuses are the statuses in which a request still accepts
// responses and a selection.
var OpenRequestStatuses = []RequestStatus{
	RequestStatusNew,
	RequestStatusMatching,
	RequestStatusPendingResponses,
	RequestStatusPendingSelection,
	RequestStatusPendingPayment,
}

var requestOrder = map[RequestStatus]int{
	RequestStatusNew:              0,
	RequestStatusMatching:         1,
	RequestStatusPendingResponses: 2,
	RequestStatusPendingSelection: 3,
	RequestStatusPendingPayment:   4,
	RequestStatusConfirmed:        5,
	RequestStatusCompleted:        6,
}

func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled
}

// IsOpen reports whether the request has not been confirmed or closed yet.
func (s RequestStatus) IsOpen() bool {
	for _, st := range OpenRequestStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// CanMoveTo enforces monotonic request status: only forward along the
// lifecycle, or to CANCELLED from any non-terminal status.
func (s RequestStatus) CanMoveTo(next RequestStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == RequestStatusCancelled {
		return true
	}
	from, ok := requestOrder[s]
	if !ok {
		return false
	}
	to, ok := requestOrder[next]
	if !ok {
		return false
	}
	return to > from
}

type Request struct {
	ID               string        `json:"id"`
	ParentID         string        `json:"parent_id"`
	Start            time.Time     `json:"datetime_start"`
	End              time.Time     `json:"datetime_end"`
	Area             string        `json:"area"`
	Address          string        `json:"address,omitempty"`
	ChildrenAges     []int         `json:"children_ages"`
	Requirements     string        `json:"requirements,omitempty"`
	MinBabysitterAge *int          `json:"min_babysitter_age,omitempty"`
	MaxBabysitterAge *int          `json:"max_babysitter_age,omitempty"`
	CommunityStyleID string        `json:"community_style_id,omitempty"`
	Status           RequestStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// MoveTo sets the status to next, or returns a StateError when the lifecycle
// forbids it.
func (r *Request) MoveTo(next RequestStatus) error {
	if !r.Status.CanMoveTo(next) {
		return r.StateError("move to " + string(next))
	}
	r.Status = next
	return nil
}

func (r *Request) StateError(attempted string) error {
	return newStateError("request", r.ID, string(r.Status), attempted)
}

type CreateRequestInput struct {
	ParentID         string
	Start            time.Time
	End              time.Time
	Area             string
	Address          string
	ChildrenAges     []int
	Requirements     string
	MinBabysitterAge *int
	MaxBabysitterAge *int
	CommunityStyleID string
}

func (in CreateRequestInput) Validate(now time.Time) error {
	if in.ParentID == "" {
		return fmt.Errorf("%w: parent_id is required", ErrValidation)
	}
	if !in.Start.After(now) {
		return fmt.Errorf("%w: datetime_start must be in the future", ErrValidation)
	}
	if !in.End.After(in.Start) {
		return fmt.Errorf("%w: datetime_end must be after datetime_start", ErrValidation)
	}
	if strings.TrimSpace(in.Area) == "" {
		return fmt.Errorf("%w: area is required", ErrValidation)
	}
	if err := validateChildrenAges(in.ChildrenAges); err != nil {
		return err
	}
	if in.MinBabysitterAge != nil && *in.MinBabysitterAge < 0 {
		return fmt.Errorf("%w: min_babysitter_age must not be negative", ErrValidation)
	}
	if in.MaxBabysitterAge != nil && *in.MaxBabysitterAge < 0 {
		return fmt.Errorf("%w: max_babysitter_age must not be negative", ErrValidation)
	}
	if in.MinBabysitterAge != nil && in.MaxBabysitterAge != nil && *in.MinBabysitterAge > *in.MaxBabysitterAge {
		return fmt.Errorf("%w: min_babysitter_age exceeds max_babysitter_age", ErrValidation)
	}
	return nil
}

// UpdateRequestInput lists every field a parent may change after posting.
// Nil fields are left untouched.
type UpdateRequestInput struct {
	Address      *string
	Requirements *string
	ChildrenAges *[]int
}

func (in UpdateRequestInput) Validate() error {
	if in.Address == nil && in.Requirements == nil && in.ChildrenAges == nil {
		return fmt.Errorf("%w: nothing to update", ErrValidation)
	}
	if in.ChildrenAges != nil {
		return validateChildrenAges(*in.ChildrenAges)
	}
	return nil
}

// Apply merges the update into r. The caller validates first.
func (in UpdateRequestInput) Apply(r *Request) {
	if in.Address != nil {
		r.Address = *in.Address
	}
	if in.Requirements != nil {
		r.Requirements = *in.Requirements
	}
	if in.ChildrenAges != nil {
		r.ChildrenAges = append([]int(nil), (*in.ChildrenAges)...)
	}
}

func validateChildrenAges(ages []int) error {
	if len(ages) == 0 {
		return fmt.Errorf("%w: children_ages must not be empty", ErrValidation)
	}
	for _, a := range ages {
		if a < 0 {
			return fmt.Errorf("%w: children_ages must not contain negative values", ErrValidation)
		}
	}
	return nil
}
