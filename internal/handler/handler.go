package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type RequestSvc interface {
	Create(ctx context.Context, input domain.CreateRequestInput) (*domain.Request, error)
	GetByID(ctx context.Context, id string) (*domain.Request, error)
	ListByParent(ctx context.Context, parentID string) ([]*domain.Request, error)
	Update(ctx context.Context, id string, input domain.UpdateRequestInput) (*domain.Request, error)
	Cancel(ctx context.Context, id string) (*domain.Request, error)
	Match(ctx context.Context, requestID string) ([]*domain.Candidate, error)
	Candidates(ctx context.Context, requestID string) ([]*domain.CandidateWithBabysitter, error)
}

type ResponseSvc interface {
	Accept(ctx context.Context, candidateID string) (*domain.Candidate, error)
	Decline(ctx context.Context, candidateID string) (*domain.Candidate, error)
	GuardianApprove(ctx context.Context, candidateID string) (*domain.Candidate, error)
	GuardianDecline(ctx context.Context, candidateID string) (*domain.Candidate, error)
	PendingForBabysitter(ctx context.Context, babysitterID string) ([]*domain.Candidate, error)
}

type SelectionSvc interface {
	Select(ctx context.Context, requestID, babysitterID string) (*domain.Booking, error)
}

type BookingSvc interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByParent(ctx context.Context, parentID string) ([]*domain.Booking, error)
	ListByBabysitter(ctx context.Context, babysitterID string) ([]*domain.Booking, error)
	Start(ctx context.Context, id string) (*domain.Booking, error)
	Complete(ctx context.Context, id string) (*domain.Booking, error)
	Cancel(ctx context.Context, id, reason string) (*domain.Booking, error)
	Rate(ctx context.Context, id string, input domain.RateBookingInput) (*domain.Booking, error)
}

type TelephonySvc interface {
	CallStatus(ctx context.Context, candidateID string) (*domain.Candidate, error)
	RetryCall(ctx context.Context, candidateID string) (*domain.Candidate, error)
	HandleWebhook(ctx context.Context, e domain.TelephonyEvent) (*domain.Candidate, error)
}

type ProfileSvc interface {
	CreateParent(ctx context.Context, input domain.CreateParentInput) (*domain.ParentProfile, error)
	GetParent(ctx context.Context, id string) (*domain.ParentProfile, error)
	CreateBabysitter(ctx context.Context, input domain.CreateBabysitterInput) (*domain.BabysitterProfile, error)
	GetBabysitter(ctx context.Context, id string) (*domain.BabysitterProfile, error)
}

type CatalogSvc interface {
	CreateCity(ctx context.Context, input domain.CreateCityInput) (*domain.City, error)
	ListCities(ctx context.Context) ([]*domain.City, error)
	GetCity(ctx context.Context, id string) (*domain.City, error)
	ListNeighborhoods(ctx context.Context, cityID string) ([]*domain.Neighborhood, error)
	CreateCommunityStyle(ctx context.Context, input domain.CreateCommunityStyleInput) (*domain.CommunityStyle, error)
	ListCommunityStyles(ctx context.Context) ([]*domain.CommunityStyle, error)
}

type Handler struct {
	requestService   RequestSvc
	responseService  ResponseSvc
	selectionService SelectionSvc
	bookingService   BookingSvc
	telephonyService TelephonySvc
	profileService   ProfileSvc
	catalogService   CatalogSvc
}

func NewHandler(
	requestService RequestSvc,
	responseService ResponseSvc,
	selectionService SelectionSvc,
	bookingService BookingSvc,
	telephonyService TelephonySvc,
	profileService ProfileSvc,
	catalogService CatalogSvc,
) *Handler {
	return &Handler{
		requestService:   requestService,
		responseService:  responseService,
		selectionService: selectionService,
		bookingService:   bookingService,
		telephonyService: telephonyService,
		profileService:   profileService,
		catalogService:   catalogService,
	}
}

// pathID reads a UUID path parameter, answering 400 itself when it is malformed.
func pathID(c *ginext.Context, name, what string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

// queryID reads an optional UUID query parameter under any of its accepted names.
func queryID(c *ginext.Context, names ...string) (string, bool, error) {
	for _, n := range names {
		if v := c.Query(n); v != "" {
			if _, err := uuid.Parse(v); err != nil {
				return "", false, errors.New("invalid " + n)
			}
			return v, true, nil
		}
	}
	return "", false, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case domain.IsConflict(err),
		errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
