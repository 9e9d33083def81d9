package handler

import (
	"net/http"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// ListBookings filters by parent or by babysitter; exactly one is required.
func (h *Handler) ListBookings(c *ginext.Context) {
	parentID, byParent, err := queryID(c, "parent_id", "parentId")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	babysitterID, byBabysitter, err := queryID(c, "babysitter_id", "babysitterId")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if byParent == byBabysitter {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "exactly one of parent_id or babysitter_id is required",
		})
		return
	}

	var bookings []*domain.Booking
	if byParent {
		bookings, err = h.bookingService.ListByParent(c.Request.Context(), parentID)
	} else {
		bookings, err = h.bookingService.ListByBabysitter(c.Request.Context(), babysitterID)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) StartBooking(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.Start(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CompleteBooking(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.Complete(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) RateBooking(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	var req dto.RateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RateBookingInput{
		ParentRating:     req.ParentRating,
		ParentReview:     req.ParentReview,
		BabysitterRating: req.BabysitterRating,
	}

	booking, err := h.bookingService.Rate(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
