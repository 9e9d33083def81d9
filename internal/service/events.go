package service

import (
	"time"

	"github.com/stpnv0/SitterMatch/internal/domain"
)

func requestEvent(t domain.EventType, r *domain.Request) domain.Event {
	return domain.Event{
		Type:      t,
		RequestID: r.ID,
		ParentID:  r.ParentID,
		Status:    string(r.Status),
		At:        time.Now().UTC(),
	}
}

func candidateEvent(t domain.EventType, parentID string, c *domain.Candidate) domain.Event {
	return domain.Event{
		Type:         t,
		RequestID:    c.RequestID,
		CandidateID:  c.ID,
		ParentID:     parentID,
		BabysitterID: c.BabysitterID,
		Status:       string(c.Response),
		At:           time.Now().UTC(),
	}
}

func bookingEvent(t domain.EventType, b *domain.Booking) domain.Event {
	return domain.Event{
		Type:         t,
		RequestID:    b.RequestID,
		BookingID:    b.ID,
		ParentID:     b.ParentID,
		BabysitterID: b.BabysitterID,
		Status:       string(b.Status),
		Reason:       b.CancelReason,
		At:           time.Now().UTC(),
	}
}
