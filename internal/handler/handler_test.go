package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/handler/dto"
	hmocks "github.com/stpnv0/SitterMatch/internal/handler/mocks"
	"github.com/stpnv0/SitterMatch/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type services struct {
	request   *hmocks.MockRequestSvc
	response  *hmocks.MockResponseSvc
	selection *hmocks.MockSelectionSvc
	booking   *hmocks.MockBookingSvc
	telephony *hmocks.MockTelephonySvc
	profile   *hmocks.MockProfileSvc
	catalog   *hmocks.MockCatalogSvc
}

func setupRouter(t *testing.T) (*services, http.Handler) {
	t.Helper()
	s := &services{
		request:   hmocks.NewMockRequestSvc(t),
		response:  hmocks.NewMockResponseSvc(t),
		selection: hmocks.NewMockSelectionSvc(t),
		booking:   hmocks.NewMockBookingSvc(t),
		telephony: hmocks.NewMockTelephonySvc(t),
		profile:   hmocks.NewMockProfileSvc(t),
		catalog:   hmocks.NewMockCatalogSvc(t),
	}

	h := NewHandler(s.request, s.response, s.selection, s.booking, s.telephony, s.profile, s.catalog)

	return s, router.InitRouter("test", h, nil)
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func newID() string { return uuid.New().String() }

// --- Jobs ---

func TestHandler_CreateJob_Success(t *testing.T) {
	s, r := setupRouter(t)

	parentID := newID()
	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	job := &domain.Request{
		ID:           newID(),
		ParentID:     parentID,
		Start:        start,
		End:          start.Add(3 * time.Hour),
		Area:         "Центр",
		ChildrenAges: []int{3},
		Status:       domain.RequestStatusPendingResponses,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	s.request.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateRequestInput) bool {
		return in.ParentID == parentID && in.Start.Equal(start) && in.Area == "Центр"
	})).Return(job, nil)

	w := do(r, http.MethodPost, "/api/jobs", dto.CreateJobRequest{
		ParentID:      parentID,
		DatetimeStart: start.Format(time.RFC3339),
		DatetimeEnd:   start.Add(3 * time.Hour).Format(time.RFC3339),
		Area:          "Центр",
		ChildrenAges:  []int{3},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.JobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, job.ID, resp.ID)
	assert.Equal(t, "PENDING_RESPONSES", resp.Status)
}

func TestHandler_CreateJob_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/jobs", `{"area":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateJob_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	body := fmt.Sprintf(`{"parent_id":%q,"datetime_start":"tomorrow","datetime_end":"2030-01-01T10:00:00Z","area":"X","children_ages":[2]}`, newID())
	w := do(r, http.MethodPost, "/api/jobs", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateJob_ValidationFromService(t *testing.T) {
	s, r := setupRouter(t)

	s.request.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: datetime_start must be in the future", domain.ErrValidation))

	w := do(r, http.MethodPost, "/api/jobs", dto.CreateJobRequest{
		ParentID:      newID(),
		DatetimeStart: "2020-01-01T10:00:00Z",
		DatetimeEnd:   "2020-01-01T12:00:00Z",
		Area:          "X",
		ChildrenAges:  []int{2},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetJob_NotFound(t *testing.T) {
	s, r := setupRouter(t)

	id := newID()
	s.request.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrRequestNotFound)

	w := do(r, http.MethodGet, "/api/jobs/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetJob_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodGet, "/api/jobs/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListJobs(t *testing.T) {
	s, r := setupRouter(t)

	parentID := newID()
	s.request.EXPECT().ListByParent(mock.Anything, parentID).Return([]*domain.Request{
		{ID: newID(), ParentID: parentID, Status: domain.RequestStatusCancelled},
	}, nil)

	w := do(r, http.MethodGet, "/api/jobs?parentId="+parentID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.JobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)

	w = do(r, http.MethodGet, "/api/jobs", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "parent_id query parameter is required")
}

func TestHandler_ListJobs_MalformedParentID(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodGet, "/api/jobs?parent_id=not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid parent_id")
	assert.NotContains(t, w.Body.String(), "required")

	w = do(r, http.MethodGet, "/api/jobs?parentId=42", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid parentId")
}

func TestHandler_CancelJob_Confirmed(t *testing.T) {
	s, r := setupRouter(t)

	id := newID()
	s.request.EXPECT().Cancel(mock.Anything, id).
		Return(nil, &domain.StateError{Entity: "request", ID: id, Current: "CONFIRMED", Attempted: "cancel"})

	w := do(r, http.MethodPost, "/api/jobs/"+id+"/cancel", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_MatchJob(t *testing.T) {
	s, r := setupRouter(t)

	id := newID()
	s.request.EXPECT().Match(mock.Anything, id).Return([]*domain.Candidate{
		domain.NewCandidate(newID(), id, newID(), time.Now()),
	}, nil)

	w := do(r, http.MethodPost, "/api/jobs/"+id+"/match", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.CandidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "PENDING", resp[0].Response)
}

func TestHandler_GetCandidates_IncludesBabysitter(t *testing.T) {
	s, r := setupRouter(t)

	id := newID()
	b := &domain.BabysitterProfile{ID: newID(), FullName: "Анна", Age: 19}
	c := domain.NewCandidate(newID(), id, b.ID, time.Now())
	c.Response = domain.ResponseInterested
	s.request.EXPECT().Candidates(mock.Anything, id).Return([]*domain.CandidateWithBabysitter{
		{Candidate: *c, Babysitter: b},
	}, nil)

	w := do(r, http.MethodGet, "/api/jobs/"+id+"/candidates", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.CandidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.NotNil(t, resp[0].Babysitter)
	assert.Equal(t, "Анна", resp[0].Babysitter.FullName)
}

func TestHandler_SelectBabysitter(t *testing.T) {
	s, r := setupRouter(t)

	requestID, babysitterID := newID(), newID()
	booking := &domain.Booking{
		ID:           newID(),
		RequestID:    requestID,
		BabysitterID: babysitterID,
		Status:       domain.BookingStatusConfirmed,
	}
	s.selection.EXPECT().Select(mock.Anything, requestID, babysitterID).Return(booking, nil).Once()

	w := do(r, http.MethodPost, "/api/jobs/"+requestID+"/select", dto.SelectBabysitterRequest{BabysitterID: babysitterID})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CONFIRMED", resp.Status)
}

func TestHandler_SelectBabysitter_AlreadyConfirmed(t *testing.T) {
	s, r := setupRouter(t)

	requestID, babysitterID := newID(), newID()
	s.selection.EXPECT().Select(mock.Anything, requestID, babysitterID).
		Return(nil, fmt.Errorf("create booking: %w", domain.ErrAlreadyConfirmed))

	w := do(r, http.MethodPost, "/api/requests/"+requestID+"/select", dto.SelectBabysitterRequest{BabysitterID: babysitterID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Responses ---

func TestHandler_AcceptRequest(t *testing.T) {
	s, r := setupRouter(t)

	id := newID()
	c := domain.NewCandidate(id, newID(), newID(), time.Now())
	c.Response = domain.ResponseGuardianPending
	s.response.EXPECT().Accept(mock.Anything, id).Return(c, nil)

	w := do(r, http.MethodPost, "/api/babysitters/requests/"+id+"/accept", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.CandidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "GUARDIAN_PENDING", resp.Response)
}

func TestHandler_GuardianApprove_InvalidState(t *testing.T) {
	s, r := setupRouter(t)

	id := newID()
	s.response.EXPECT().GuardianApprove(mock.Anything, id).
		Return(nil, &domain.StateError{Entity: "candidate", ID: id, Current: "DECLINED", Attempted: "guardian approve"})

	w := do(r, http.MethodPost, "/api/guardians/requests/"+id+"/approve", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetPendingRequests(t *testing.T) {
	s, r := setupRouter(t)

	id := newID()
	s.response.EXPECT().PendingForBabysitter(mock.Anything, id).Return(nil, nil)

	w := do(r, http.MethodGet, "/api/babysitters/"+id+"/pending-requests", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

// --- Bookings ---

func TestHandler_ListBookings_RequiresExactlyOneFilter(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodGet, "/api/bookings", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, fmt.Sprintf("/api/bookings?parent_id=%s&babysitter_id=%s", newID(), newID()), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/api/bookings?parent_id=oops", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListBookings_ByBabysitter(t *testing.T) {
	s, r := setupRouter(t)

	id := newID()
	s.booking.EXPECT().ListByBabysitter(mock.Anything, id).Return([]*domain.Booking{{ID: newID(), BabysitterID: id}}, nil)

	w := do(r, http.MethodGet, "/api/bookings?babysitterId="+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelBooking_NeedsReason(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/bookings/"+newID()+"/cancel", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CompleteBooking(t *testing.T) {
	s, r := setupRouter(t)

	id := newID()
	now := time.Now()
	s.booking.EXPECT().Complete(mock.Anything, id).Return(&domain.Booking{
		ID:          id,
		Status:      domain.BookingStatusCompleted,
		CompletedAt: &now,
	}, nil)

	w := do(r, http.MethodPost, "/api/bookings/"+id+"/complete", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "COMPLETED", resp.Status)
	assert.NotNil(t, resp.CompletedAt)
}

func TestHandler_RateBooking(t *testing.T) {
	s, r := setupRouter(t)

	id := newID()
	s.booking.EXPECT().Rate(mock.Anything, id, mock.MatchedBy(func(in domain.RateBookingInput) bool {
		return in.ParentRating != nil && *in.ParentRating == 5 && in.BabysitterRating == nil
	})).Return(&domain.Booking{ID: id, Status: domain.BookingStatusCompleted}, nil)

	w := do(r, http.MethodPost, "/api/bookings/"+id+"/rate", `{"parent_rating":5}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_InternalError(t *testing.T) {
	s, r := setupRouter(t)

	id := newID()
	s.booking.EXPECT().GetByID(mock.Anything, id).Return(nil, errors.New("db is down"))

	w := do(r, http.MethodGet, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db is down")
}

// --- Telephony ---

func TestHandler_TelephonyWebhook(t *testing.T) {
	s, r := setupRouter(t)

	id := newID()
	c := domain.NewCandidate(id, newID(), newID(), time.Now())
	c.Response = domain.ResponseInterested
	s.telephony.EXPECT().HandleWebhook(mock.Anything, mock.MatchedBy(func(e domain.TelephonyEvent) bool {
		return e.Type == domain.DTMFReceived && e.CandidateID == id && e.DTMFInput == "1"
	})).Return(c, nil)

	w := do(r, http.MethodPost, "/api/telephony/webhook", dto.TelephonyWebhookRequest{
		EventType:   "DTMF_RECEIVED",
		CandidateID: id,
		CallID:      "call-42",
		DTMFInput:   "1",
		Timestamp:   "2030-01-01T10:00:00Z",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.CallStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INTERESTED", resp.Response)
}

func TestHandler_TelephonyWebhook_BadTimestamp(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/telephony/webhook", dto.TelephonyWebhookRequest{
		EventType:   "CALL_INITIATED",
		CandidateID: newID(),
		Timestamp:   "yesterday",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RetryCall(t *testing.T) {
	s, r := setupRouter(t)

	id := newID()
	c := domain.NewCandidate(id, newID(), newID(), time.Now())
	c.CallAttempts = 1
	s.telephony.EXPECT().RetryCall(mock.Anything, id).Return(c, nil)

	w := do(r, http.MethodPost, "/api/telephony/retry/"+id, nil)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

// --- Profiles ---

func TestHandler_CreateBabysitter(t *testing.T) {
	s, r := setupRouter(t)

	s.profile.EXPECT().CreateBabysitter(mock.Anything, mock.MatchedBy(func(in domain.CreateBabysitterInput) bool {
		return in.GuardianRequiredApproval && len(in.ServiceAreas) == 2
	})).Return(&domain.BabysitterProfile{ID: newID(), FullName: "Оля", GuardianRequiredApproval: true}, nil)

	w := do(r, http.MethodPost, "/api/babysitters", dto.CreateBabysitterRequest{
		FullName:                 "Оля",
		Phone:                    "+79990000011",
		Age:                      16,
		City:                     "Kazan",
		Neighborhood:             "Sovetsky",
		ServiceAreas:             []string{"Center", "Kirovsky"},
		GuardianRequiredApproval: true,
		GuardianPhone:            "+79990000012",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateParent_PhoneTaken(t *testing.T) {
	s, r := setupRouter(t)

	s.profile.EXPECT().CreateParent(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("create parent: %w", domain.ErrPhoneTaken))

	w := do(r, http.MethodPost, "/api/parents", dto.CreateParentRequest{
		FullName:     "Ирина",
		Phone:        "+79990000013",
		City:         "Kazan",
		Neighborhood: "Sovetsky",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Health(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Catalog ---

func TestHandler_ListNeighborhoods(t *testing.T) {
	s, r := setupRouter(t)

	cityID := newID()
	s.catalog.EXPECT().ListNeighborhoods(mock.Anything, cityID).Return([]*domain.Neighborhood{
		{ID: newID(), CityID: cityID, Name: "Sovetsky"},
		{ID: newID(), CityID: cityID, Name: "Vakhitovsky"},
	}, nil)

	w := do(r, http.MethodGet, "/api/cities/"+cityID+"/neighborhoods", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.NeighborhoodResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Sovetsky", resp[0].Name)
	assert.Equal(t, cityID, resp[1].CityID)
}

func TestHandler_ListNeighborhoods_UnknownCity(t *testing.T) {
	s, r := setupRouter(t)

	cityID := newID()
	s.catalog.EXPECT().ListNeighborhoods(mock.Anything, cityID).Return(nil, domain.ErrCityNotFound)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/cities/"+cityID+"/neighborhoods", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/cities/kazan/neighborhoods", nil).Code)
}

func TestHandler_ListCities(t *testing.T) {
	s, r := setupRouter(t)

	s.catalog.EXPECT().ListCities(mock.Anything).Return([]*domain.City{{ID: newID(), Name: "Kazan"}}, nil)

	w := do(r, http.MethodGet, "/api/cities", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.CityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Kazan", resp[0].Name)
}

func TestHandler_CreateCity_Exists(t *testing.T) {
	s, r := setupRouter(t)

	s.catalog.EXPECT().CreateCity(mock.Anything, domain.CreateCityInput{Name: "Kazan", Neighborhoods: []string{"Sovetsky"}}).
		Return(nil, domain.ErrCityExists)

	w := do(r, http.MethodPost, "/api/cities", map[string]any{"name": "Kazan", "neighborhoods": []string{"Sovetsky"}})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListCommunityStyles(t *testing.T) {
	s, r := setupRouter(t)

	s.catalog.EXPECT().ListCommunityStyles(mock.Anything).Return([]*domain.CommunityStyle{{ID: newID(), Label: "Secular"}}, nil)

	w := do(r, http.MethodGet, "/api/community-styles", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Secular")
}

func TestHandler_CreateJob_UnknownArea(t *testing.T) {
	s, r := setupRouter(t)

	s.request.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: unknown neighborhood \"Atlantis\" in Kazan", domain.ErrValidation))

	start := time.Now().Add(24 * time.Hour).UTC()
	w := do(r, http.MethodPost, "/api/jobs", map[string]any{
		"parent_id":      newID(),
		"datetime_start": start.Format(time.RFC3339),
		"datetime_end":   start.Add(time.Hour).Format(time.RFC3339),
		"area":           "Atlantis",
		"children_ages":  []int{3},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown neighborhood")
}
