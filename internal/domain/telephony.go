package domain

import "time"

type TelephonyEventType string

const (
	CallInitiated  TelephonyEventType = "CALL_INITIATED"
	CallAnswered   TelephonyEventType = "CALL_ANSWERED"
	CallCompleted  TelephonyEventType = "CALL_COMPLETED"
	CallNoAnswer   TelephonyEventType = "NO_ANSWER"
	CallFailed     TelephonyEventType = "CALL_FAILED"
	DTMFReceived   TelephonyEventType = "DTMF_RECEIVED"
	RecordingReady TelephonyEventType = "RECORDING_READY"
)

// IVR keys a babysitter presses to answer an offer over the phone.
const (
	DTMFAccept  = "1"
	DTMFDecline = "2"
)

// TelephonyEvent is a callback from the IVR provider about a call placed for
// a candidate.
type TelephonyEvent struct {
	Type            TelephonyEventType
	CandidateID     string
	CallID          string
	DTMFInput       string
	DurationSeconds int
	At              time.Time
}

// CallJob asks the IVR worker to phone a babysitter about one candidate.
type CallJob struct {
	CandidateID   string    `json:"candidate_id"`
	RequestID     string    `json:"request_id"`
	BabysitterID  string    `json:"babysitter_id"`
	Phone         string    `json:"phone"`
	FullName      string    `json:"full_name"`
	Area          string    `json:"area"`
	DatetimeStart time.Time `json:"datetime_start"`
	DatetimeEnd   time.Time `json:"datetime_end"`
}
