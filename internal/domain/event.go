package domain

import "time"

type EventType string

const (
	EventRequestCreated    EventType = "request.created"
	EventRequestCancelled  EventType = "request.cancelled"
	EventCandidateCreated  EventType = "candidate.created"
	EventCandidateResponse EventType = "candidate.responded"
	EventGuardianRequested EventType = "candidate.guardian_requested"
	EventCallRequested     EventType = "candidate.call_requested"
	EventBookingConfirmed  EventType = "booking.confirmed"
	EventBookingStarted    EventType = "booking.started"
	EventBookingCompleted  EventType = "booking.completed"
	EventBookingCancelled  EventType = "booking.cancelled"
)

// Event is the externally observable record of a state change. Consumers
// subscribe to it instead of polling.
type Event struct {
	Type         EventType `json:"type"`
	RequestID    string    `json:"request_id,omitempty"`
	CandidateID  string    `json:"candidate_id,omitempty"`
	BookingID    string    `json:"booking_id,omitempty"`
	ParentID     string    `json:"parent_id,omitempty"`
	BabysitterID string    `json:"babysitter_id,omitempty"`
	Status       string    `json:"status,omitempty"`
	Reason       string    `json:"reason,omitempty"`
	At           time.Time `json:"at"`
}
