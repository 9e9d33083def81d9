package handler

import (
	"net/http"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateParent(c *ginext.Context) {
	var req dto.CreateParentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateParentInput{
		FullName:       req.FullName,
		Phone:          req.Phone,
		City:           req.City,
		Neighborhood:   req.Neighborhood,
		Address:        req.Address,
		ChildrenAges:   req.ChildrenAges,
		TelegramChatID: req.TelegramChatID,
	}

	parent, err := h.profileService.CreateParent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToParentResponse(parent))
}

func (h *Handler) GetParent(c *ginext.Context) {
	id, ok := pathID(c, "id", "parent")
	if !ok {
		return
	}

	parent, err := h.profileService.GetParent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToParentResponse(parent))
}

func (h *Handler) CreateBabysitter(c *ginext.Context) {
	var req dto.CreateBabysitterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateBabysitterInput{
		FullName:                 req.FullName,
		Phone:                    req.Phone,
		Age:                      req.Age,
		City:                     req.City,
		Neighborhood:             req.Neighborhood,
		ServiceAreas:             req.ServiceAreas,
		GuardianRequiredApproval: req.GuardianRequiredApproval,
		GuardianPhone:            req.GuardianPhone,
		GuardianTelegramChatID:   req.GuardianTelegramChatID,
		CommunityStyleID:         req.CommunityStyleID,
		TelegramChatID:           req.TelegramChatID,
	}

	babysitter, err := h.profileService.CreateBabysitter(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBabysitterResponse(babysitter))
}

func (h *Handler) GetBabysitter(c *ginext.Context) {
	id, ok := pathID(c, "id", "babysitter")
	if !ok {
		return
	}

	babysitter, err := h.profileService.GetBabysitter(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBabysitterResponse(babysitter))
}
