package domain

import (
	"fmt"
	"slices"
	"time"
)

type CandidateResponse string

const (
	ResponsePending          CandidateResponse = "PENDING"
	ResponseInterested       CandidateResponse = "INTERESTED"
	ResponseDeclined         CandidateResponse = "DECLINED"
	ResponseGuardianPending  CandidateResponse = "GUARDIAN_PENDING"
	ResponseGuardianApproved CandidateResponse = "GUARDIAN_APPROVED"
	ResponseGuardianDeclined CandidateResponse = "GUARDIAN_DECLINED"
)

// AvailableResponses are the responses a parent may select.
var AvailableResponses = []CandidateResponse{ResponseInterested, ResponseGuardianApproved}

func (r CandidateResponse) IsAvailable() bool {
	return r == ResponseInterested || r == ResponseGuardianApproved
}

func (r CandidateResponse) IsTerminal() bool {
	switch r {
	case ResponseInterested, ResponseDeclined, ResponseGuardianApproved, ResponseGuardianDeclined:
		return true
	}
	return false
}

type CallStatus string

const (
	CallStatusPending   CallStatus = "PENDING"
	CallStatusCalling   CallStatus = "CALLING"
	CallStatusCompleted CallStatus = "COMPLETED"
	CallStatusNoAnswer  CallStatus = "NO_ANSWER"
	CallStatusFailed    CallStatus = "FAILED"
)

// CanRetry reports whether a new call may be placed after this outcome.
func (s CallStatus) CanRetry() bool {
	return s == CallStatusNoAnswer || s == CallStatusFailed
}

type Candidate struct {
	ID                    string            `json:"id"`
	RequestID             string            `json:"request_id"`
	BabysitterID          string            `json:"babysitter_id"`
	CallStatus            CallStatus        `json:"call_status"`
	CallAttempts          int               `json:"call_attempts"`
	Response              CandidateResponse `json:"response"`
	BabysitterRespondedAt *time.Time        `json:"babysitter_responded_at,omitempty"`
	GuardianRespondedAt   *time.Time        `json:"guardian_responded_at,omitempty"`
	CreatedAt             time.Time         `json:"created_at"`
}

func NewCandidate(id, requestID, babysitterID string, now time.Time) *Candidate {
	return &Candidate{
		ID:           id,
		RequestID:    requestID,
		BabysitterID: babysitterID,
		CallStatus:   CallStatusPending,
		CallAttempts: 0,
		Response:     ResponsePending,
		CreatedAt:    now,
	}
}

// CandidateWithBabysitter is a candidate joined with the babysitter profile it
// points to.
type CandidateWithBabysitter struct {
	Candidate
	Babysitter *BabysitterProfile `json:"babysitter"`
}

// ResponseChange is a compare-and-set on Candidate.Response. Stores apply it
// only while the candidate still holds From.
type ResponseChange struct {
	CandidateID string
	From        CandidateResponse
	To          CandidateResponse
	At          time.Time
	ByGuardian  bool
}

// Accept computes the babysitter's acceptance. Babysitters that need a
// guardian's approval park in GUARDIAN_PENDING.
func (c *Candidate) Accept(guardianRequired bool, at time.Time) (ResponseChange, error) {
	if c.Response != ResponsePending {
		return ResponseChange{}, c.stateError("accept")
	}
	to := ResponseInterested
	if guardianRequired {
		to = ResponseGuardianPending
	}
	return ResponseChange{CandidateID: c.ID, From: c.Response, To: to, At: at}, nil
}

func (c *Candidate) Decline(at time.Time) (ResponseChange, error) {
	if c.Response != ResponsePending {
		return ResponseChange{}, c.stateError("decline")
	}
	return ResponseChange{CandidateID: c.ID, From: c.Response, To: ResponseDeclined, At: at}, nil
}

func (c *Candidate) GuardianApprove(at time.Time) (ResponseChange, error) {
	if c.Response != ResponseGuardianPending {
		return ResponseChange{}, c.stateError("guardian approve")
	}
	return ResponseChange{CandidateID: c.ID, From: c.Response, To: ResponseGuardianApproved, At: at, ByGuardian: true}, nil
}

func (c *Candidate) GuardianDecline(at time.Time) (ResponseChange, error) {
	if c.Response != ResponseGuardianPending {
		return ResponseChange{}, c.stateError("guardian decline")
	}
	return ResponseChange{CandidateID: c.ID, From: c.Response, To: ResponseGuardianDeclined, At: at, ByGuardian: true}, nil
}

// ApplyResponse writes the change into c, stamping the matching timestamp.
func (c *Candidate) ApplyResponse(ch ResponseChange) {
	at := ch.At
	c.Response = ch.To
	if ch.ByGuardian {
		c.GuardianRespondedAt = &at
	} else {
		c.BabysitterRespondedAt = &at
	}
}

func (c *Candidate) stateError(attempted string) error {
	return newStateError("candidate", c.ID, string(c.Response), attempted)
}

// CallStateError is returned when a telephony action does not fit the
// candidate's current call status.
func (c *Candidate) CallStateError(attempted string) error {
	return newStateError("call for candidate", c.ID, string(c.CallStatus), attempted)
}

// CallChange is a compare-and-set on Candidate.CallStatus. AddAttempt bumps
// CallAttempts in the same write.
type CallChange struct {
	CandidateID string
	From        CallStatus
	To          CallStatus
	AddAttempt  bool
}

// callSources lists, per IVR progress event, the call statuses it may follow.
var callSources = map[TelephonyEventType][]CallStatus{
	CallInitiated: {CallStatusPending},
	CallCompleted: {CallStatusCalling},
	CallNoAnswer:  {CallStatusCalling},
	CallFailed:    {CallStatusPending, CallStatusCalling},
}

var callTargets = map[TelephonyEventType]CallStatus{
	CallInitiated: CallStatusCalling,
	CallCompleted: CallStatusCompleted,
	CallNoAnswer:  CallStatusNoAnswer,
	CallFailed:    CallStatusFailed,
}

// CallProgress maps an IVR progress event onto the candidate's call status.
// An outcome that does not follow the current status is a StateError, so a
// late report cannot overwrite a retried call.
func (c *Candidate) CallProgress(t TelephonyEventType) (CallChange, error) {
	to, ok := callTargets[t]
	if !ok {
		return CallChange{}, fmt.Errorf("%w: unknown telephony event %q", ErrValidation, t)
	}
	if !slices.Contains(callSources[t], c.CallStatus) {
		return CallChange{}, c.CallStateError("move to " + string(to))
	}
	return CallChange{
		CandidateID: c.ID,
		From:        c.CallStatus,
		To:          to,
		AddAttempt:  t == CallInitiated,
	}, nil
}

// RetryCall resets a failed or unanswered call so it can be placed again.
func (c *Candidate) RetryCall() (CallChange, error) {
	if !c.CallStatus.CanRetry() {
		return CallChange{}, c.CallStateError("retry call")
	}
	if c.Response != ResponsePending {
		return CallChange{}, c.CallStateError("retry call after response " + string(c.Response))
	}
	return CallChange{CandidateID: c.ID, From: c.CallStatus, To: CallStatusPending}, nil
}

func (c *Candidate) ApplyCall(ch CallChange) {
	c.CallStatus = ch.To
	if ch.AddAttempt {
		c.CallAttempts++
	}
}
