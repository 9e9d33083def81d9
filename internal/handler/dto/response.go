package dto

import (
	"time"

	"github.com/stpnv0/SitterMatch/internal/domain"
)

type JobResponse struct {
	ID               string `json:"id"`
	ParentID         string `json:"parent_id"`
	DatetimeStart    string `json:"datetime_start"`
	DatetimeEnd      string `json:"datetime_end"`
	Area             string `json:"area"`
	Address          string `json:"address"`
	ChildrenAges     []int  `json:"children_ages"`
	Requirements     string `json:"requirements"`
	MinBabysitterAge *int   `json:"min_babysitter_age,omitempty"`
	MaxBabysitterAge *int   `json:"max_babysitter_age,omitempty"`
	CommunityStyleID string `json:"community_style_id,omitempty"`
	Status           string `json:"status"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

type CandidateResponse struct {
	ID                    string              `json:"id"`
	RequestID             string              `json:"request_id"`
	BabysitterID          string              `json:"babysitter_id"`
	CallStatus            string              `json:"call_status"`
	CallAttempts          int                 `json:"call_attempts"`
	Response              string              `json:"response"`
	BabysitterRespondedAt *string             `json:"babysitter_responded_at,omitempty"`
	GuardianRespondedAt   *string             `json:"guardian_responded_at,omitempty"`
	CreatedAt             string              `json:"created_at"`
	Babysitter            *BabysitterResponse `json:"babysitter,omitempty"`
}

type CallStatusResponse struct {
	CandidateID  string `json:"candidate_id"`
	CallStatus   string `json:"call_status"`
	CallAttempts int    `json:"call_attempts"`
	Response     string `json:"response"`
}

type BookingResponse struct {
	ID               string  `json:"id"`
	RequestID        string  `json:"request_id"`
	ParentID         string  `json:"parent_id"`
	BabysitterID     string  `json:"babysitter_id"`
	DatetimeStart    string  `json:"datetime_start"`
	DatetimeEnd      string  `json:"datetime_end"`
	Address          string  `json:"address"`
	Status           string  `json:"status"`
	PaymentStatus    string  `json:"payment_status"`
	ConfirmedAt      string  `json:"confirmed_at"`
	StartedAt        *string `json:"started_at,omitempty"`
	CompletedAt      *string `json:"completed_at,omitempty"`
	CancelledAt      *string `json:"cancelled_at,omitempty"`
	CancelReason     string  `json:"cancel_reason,omitempty"`
	ParentRating     *int    `json:"parent_rating,omitempty"`
	ParentReview     string  `json:"parent_review,omitempty"`
	BabysitterRating *int    `json:"babysitter_rating,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

type ParentResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Phone          string `json:"phone"`
	City           string `json:"city"`
	Neighborhood   string `json:"neighborhood"`
	Address        string `json:"address,omitempty"`
	ChildrenAges   []int  `json:"children_ages"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type BabysitterResponse struct {
	ID                       string   `json:"id"`
	FullName                 string   `json:"full_name"`
	Phone                    string   `json:"phone"`
	Age                      int      `json:"age"`
	City                     string   `json:"city"`
	Neighborhood             string   `json:"neighborhood"`
	ServiceAreas             []string `json:"service_areas"`
	GuardianRequiredApproval bool     `json:"guardian_required_approval"`
	CommunityStyleID         string   `json:"community_style_id,omitempty"`
	TelegramChatID           *int64   `json:"telegram_chat_id,omitempty"`
	CreatedAt                string   `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToJobResponse(r *domain.Request) JobResponse {
	ages := r.ChildrenAges
	if ages == nil {
		ages = []int{}
	}
	return JobResponse{
		ID:               r.ID,
		ParentID:         r.ParentID,
		DatetimeStart:    r.Start.Format(time.RFC3339),
		DatetimeEnd:      r.End.Format(time.RFC3339),
		Area:             r.Area,
		Address:          r.Address,
		ChildrenAges:     ages,
		Requirements:     r.Requirements,
		MinBabysitterAge: r.MinBabysitterAge,
		MaxBabysitterAge: r.MaxBabysitterAge,
		CommunityStyleID: r.CommunityStyleID,
		Status:           string(r.Status),
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToJobResponses(rs []*domain.Request) []JobResponse {
	resp := make([]JobResponse, 0, len(rs))
	for _, r := range rs {
		resp = append(resp, ToJobResponse(r))
	}
	return resp
}

func ToCandidateResponse(c *domain.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:                    c.ID,
		RequestID:             c.RequestID,
		BabysitterID:          c.BabysitterID,
		CallStatus:            string(c.CallStatus),
		CallAttempts:          c.CallAttempts,
		Response:              string(c.Response),
		BabysitterRespondedAt: formatOptional(c.BabysitterRespondedAt),
		GuardianRespondedAt:   formatOptional(c.GuardianRespondedAt),
		CreatedAt:             c.CreatedAt.Format(time.RFC3339),
	}
}

func ToCandidateResponses(cs []*domain.Candidate) []CandidateResponse {
	resp := make([]CandidateResponse, 0, len(cs))
	for _, c := range cs {
		resp = append(resp, ToCandidateResponse(c))
	}
	return resp
}

func ToCandidateWithBabysitterResponses(cs []*domain.CandidateWithBabysitter) []CandidateResponse {
	resp := make([]CandidateResponse, 0, len(cs))
	for _, c := range cs {
		item := ToCandidateResponse(&c.Candidate)
		if c.Babysitter != nil {
			b := ToBabysitterResponse(c.Babysitter)
			item.Babysitter = &b
		}
		resp = append(resp, item)
	}
	return resp
}

func ToCallStatusResponse(c *domain.Candidate) CallStatusResponse {
	return CallStatusResponse{
		CandidateID:  c.ID,
		CallStatus:   string(c.CallStatus),
		CallAttempts: c.CallAttempts,
		Response:     string(c.Response),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		RequestID:        b.RequestID,
		ParentID:         b.ParentID,
		BabysitterID:     b.BabysitterID,
		DatetimeStart:    b.Start.Format(time.RFC3339),
		DatetimeEnd:      b.End.Format(time.RFC3339),
		Address:          b.Address,
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		ConfirmedAt:      b.ConfirmedAt.Format(time.RFC3339),
		StartedAt:        formatOptional(b.StartedAt),
		CompletedAt:      formatOptional(b.CompletedAt),
		CancelledAt:      formatOptional(b.CancelledAt),
		CancelReason:     b.CancelReason,
		ParentRating:     b.ParentRating,
		ParentReview:     b.ParentReview,
		BabysitterRating: b.BabysitterRating,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponses(bs []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bs))
	for _, b := range bs {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToParentResponse(p *domain.ParentProfile) ParentResponse {
	ages := p.ChildrenAges
	if ages == nil {
		ages = []int{}
	}
	return ParentResponse{
		ID:             p.ID,
		FullName:       p.FullName,
		Phone:          p.Phone,
		City:           p.City,
		Neighborhood:   p.Neighborhood,
		Address:        p.Address,
		ChildrenAges:   ages,
		TelegramChatID: p.TelegramChatID,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
}

func ToBabysitterResponse(b *domain.BabysitterProfile) BabysitterResponse {
	areas := b.ServiceAreas
	if areas == nil {
		areas = []string{}
	}
	return BabysitterResponse{
		ID:                       b.ID,
		FullName:                 b.FullName,
		Phone:                    b.Phone,
		Age:                      b.Age,
		City:                     b.City,
		Neighborhood:             b.Neighborhood,
		ServiceAreas:             areas,
		GuardianRequiredApproval: b.GuardianRequiredApproval,
		CommunityStyleID:         b.CommunityStyleID,
		TelegramChatID:           b.TelegramChatID,
		CreatedAt:                b.CreatedAt.Format(time.RFC3339),
	}
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

type CityResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type NeighborhoodResponse struct {
	ID     string `json:"id"`
	CityID string `json:"city_id"`
	Name   string `json:"name"`
}

type CommunityStyleResponse struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

func ToCityResponses(cs []*domain.City) []CityResponse {
	res := make([]CityResponse, 0, len(cs))
	for _, c := range cs {
		res = append(res, CityResponse{ID: c.ID, Name: c.Name})
	}
	return res
}

func ToNeighborhoodResponses(ns []*domain.Neighborhood) []NeighborhoodResponse {
	res := make([]NeighborhoodResponse, 0, len(ns))
	for _, n := range ns {
		res = append(res, NeighborhoodResponse{ID: n.ID, CityID: n.CityID, Name: n.Name})
	}
	return res
}

func ToCommunityStyleResponse(s *domain.CommunityStyle) CommunityStyleResponse {
	return CommunityStyleResponse{ID: s.ID, Label: s.Label, Description: s.Description}
}

func ToCommunityStyleResponses(ss []*domain.CommunityStyle) []CommunityStyleResponse {
	res := make([]CommunityStyleResponse, 0, len(ss))
	for _, s := range ss {
		res = append(res, ToCommunityStyleResponse(s))
	}
	return res
}
