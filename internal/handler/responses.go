package handler

import (
	"context"
	"net/http"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) AcceptRequest(c *ginext.Context) {
	h.respond(c, h.responseService.Accept)
}

func (h *Handler) DeclineRequest(c *ginext.Context) {
	h.respond(c, h.responseService.Decline)
}

func (h *Handler) GuardianApprove(c *ginext.Context) {
	h.respond(c, h.responseService.GuardianApprove)
}

func (h *Handler) GuardianDecline(c *ginext.Context) {
	h.respond(c, h.responseService.GuardianDecline)
}

func (h *Handler) GetPendingRequests(c *ginext.Context) {
	id, ok := pathID(c, "id", "babysitter")
	if !ok {
		return
	}

	candidates, err := h.responseService.PendingForBabysitter(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCandidateResponses(candidates))
}

func (h *Handler) respond(c *ginext.Context, action func(ctx context.Context, candidateID string) (*domain.Candidate, error)) {
	id, ok := pathID(c, "candidateId", "candidate")
	if !ok {
		return
	}

	candidate, err := action(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCandidateResponse(candidate))
}
