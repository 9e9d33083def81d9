package handler

import (
	"net/http"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListCities(c *ginext.Context) {
	cities, err := h.catalogService.ListCities(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCityResponses(cities))
}

func (h *Handler) GetCity(c *ginext.Context) {
	id, ok := pathID(c, "id", "city")
	if !ok {
		return
	}

	city, err := h.catalogService.GetCity(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CityResponse{ID: city.ID, Name: city.Name})
}

func (h *Handler) ListNeighborhoods(c *ginext.Context) {
	id, ok := pathID(c, "id", "city")
	if !ok {
		return
	}

	hoods, err := h.catalogService.ListNeighborhoods(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNeighborhoodResponses(hoods))
}

func (h *Handler) CreateCity(c *ginext.Context) {
	var req dto.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	city, err := h.catalogService.CreateCity(c.Request.Context(), domain.CreateCityInput{
		Name:          req.Name,
		Neighborhoods: req.Neighborhoods,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CityResponse{ID: city.ID, Name: city.Name})
}

func (h *Handler) ListCommunityStyles(c *ginext.Context) {
	styles, err := h.catalogService.ListCommunityStyles(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommunityStyleResponses(styles))
}

func (h *Handler) CreateCommunityStyle(c *ginext.Context) {
	var req dto.CreateCommunityStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	style, err := h.catalogService.CreateCommunityStyle(c.Request.Context(), domain.CreateCommunityStyleInput{
		Label:       req.Label,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommunityStyleResponse(style))
}
