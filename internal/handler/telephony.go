package handler

import (
	"net/http"
	"time"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) GetCallStatus(c *ginext.Context) {
	id, ok := pathID(c, "candidateId", "candidate")
	if !ok {
		return
	}

	candidate, err := h.telephonyService.CallStatus(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCallStatusResponse(candidate))
}

func (h *Handler) RetryCall(c *ginext.Context) {
	id, ok := pathID(c, "candidateId", "candidate")
	if !ok {
		return
	}

	candidate, err := h.telephonyService.RetryCall(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.ToCallStatusResponse(candidate))
}

func (h *Handler) TelephonyWebhook(c *ginext.Context) {
	var req dto.TelephonyWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	at := time.Now().UTC()
	if req.Timestamp != "" {
		ts, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid timestamp format, expected RFC3339",
			})
			return
		}
		at = ts
	}

	event := domain.TelephonyEvent{
		Type:            domain.TelephonyEventType(req.EventType),
		CandidateID:     req.CandidateID,
		CallID:          req.CallID,
		DTMFInput:       req.DTMFInput,
		DurationSeconds: req.DurationSeconds,
		At:              at,
	}

	candidate, err := h.telephonyService.HandleWebhook(c.Request.Context(), event)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCallStatusResponse(candidate))
}
