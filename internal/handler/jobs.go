package handler

import (
	"net/http"
	"time"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateJob(c *ginext.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.DatetimeStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid datetime_start format, expected RFC3339",
		})
		return
	}
	end, err := time.Parse(time.RFC3339, req.DatetimeEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid datetime_end format, expected RFC3339",
		})
		return
	}

	input := domain.CreateRequestInput{
		ParentID:         req.ParentID,
		Start:            start,
		End:              end,
		Area:             req.Area,
		Address:          req.Address,
		ChildrenAges:     req.ChildrenAges,
		Requirements:     req.Requirements,
		MinBabysitterAge: req.MinBabysitterAge,
		MaxBabysitterAge: req.MaxBabysitterAge,
		CommunityStyleID: req.CommunityStyleID,
	}

	job, err := h.requestService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJobResponse(job))
}

func (h *Handler) GetJob(c *ginext.Context) {
	id, ok := pathID(c, "id", "job")
	if !ok {
		return
	}

	job, err := h.requestService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

func (h *Handler) ListJobs(c *ginext.Context) {
	parentID, ok, err := queryID(c, "parent_id", "parentId")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "parent_id query parameter is required"})
		return
	}

	jobs, err := h.requestService.ListByParent(c.Request.Context(), parentID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponses(jobs))
}

func (h *Handler) UpdateJob(c *ginext.Context) {
	id, ok := pathID(c, "id", "job")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateRequestInput{
		Address:      req.Address,
		Requirements: req.Requirements,
		ChildrenAges: req.ChildrenAges,
	}

	job, err := h.requestService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

func (h *Handler) CancelJob(c *ginext.Context) {
	id, ok := pathID(c, "id", "job")
	if !ok {
		return
	}

	job, err := h.requestService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

func (h *Handler) MatchJob(c *ginext.Context) {
	id, ok := pathID(c, "id", "job")
	if !ok {
		return
	}

	added, err := h.requestService.Match(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCandidateResponses(added))
}

func (h *Handler) GetCandidates(c *ginext.Context) {
	id, ok := pathID(c, "id", "job")
	if !ok {
		return
	}

	candidates, err := h.requestService.Candidates(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCandidateWithBabysitterResponses(candidates))
}

func (h *Handler) SelectBabysitter(c *ginext.Context) {
	id, ok := pathID(c, "id", "job")
	if !ok {
		return
	}

	var req dto.SelectBabysitterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.selectionService.Select(c.Request.Context(), id, req.BabysitterID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}
