package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRequestNotFound    = errors.New("request not found")
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrParentNotFound     = errors.New("parent not found")
	ErrBabysitterNotFound = errors.New("babysitter not found")
	ErrCityNotFound       = errors.New("city not found")
	ErrStyleNotFound      = errors.New("community style not found")
)

var (
	ErrAlreadyConfirmed   = errors.New("request already has a confirmed booking")
	ErrDuplicateCandidate = errors.New("babysitter is already a candidate for this request")
	ErrPhoneTaken         = errors.New("phone number is already registered")
	ErrCityExists         = errors.New("city already exists")
)

var (
	ErrInvalidState = errors.New("invalid state transition")
)

var (
	ErrValidation = errors.New("validation error")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrRequestNotFound) ||
		errors.Is(err, ErrCandidateNotFound) ||
		errors.Is(err, ErrBookingNotFound) ||
		errors.Is(err, ErrParentNotFound) ||
		errors.Is(err, ErrBabysitterNotFound) ||
		errors.Is(err, ErrCityNotFound) ||
		errors.Is(err, ErrStyleNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyConfirmed) ||
		errors.Is(err, ErrDuplicateCandidate) ||
		errors.Is(err, ErrPhoneTaken) ||
		errors.Is(err, ErrCityExists)
}

// StateError reports an out-of-order call: the entity was in Current when the
// caller attempted Attempted.
type StateError struct {
	Entity    string
	ID        string
	Current   string
	Attempted string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s %s is %s: cannot %s", e.Entity, e.ID, e.Current, e.Attempted)
}

func (e *StateError) Unwrap() error { return ErrInvalidState }

func newStateError(entity, id, current, attempted string) error {
	return &StateError{Entity: entity, ID: id, Current: current, Attempted: attempted}
}
