package handlers

import (
	"net/http"

	blockRepo "bandroom/database/repository/block"
	"bandroom/models"
	"bandroom/services/scheduling"

	"github.com/gin-gonic/gin"
)

// BlockHandler serves the staff-facing availability block CRUD.
type BlockHandler struct {
	Repo blockRepo.BlockRepository
}

func NewBlockHandler(repo blockRepo.BlockRepository) *BlockHandler {
	return &BlockHandler{Repo: repo}
}

// validateBlockRequest checks the date range and the optional time
// window. Either both window times are present or neither.
func validateBlockRequest(req models.BlockRequest) error {
	if err := scheduling.ValidateDate(req.StartDate); err != nil {
		return err
	}
	if err := scheduling.ValidateDate(req.EndDate); err != nil {
		return err
	}
	if req.StartDate > req.EndDate {
		return scheduling.NewValidationError(scheduling.ReasonInvalidDate, "start_date must not be after end_date")
	}
	if (req.StartTime == "") != (req.EndTime == "") {
		return scheduling.NewValidationError(scheduling.ReasonInvalidStart, "a time window needs both start_time and end_time")
	}
	if req.StartTime != "" {
		s, err := scheduling.ParseClock(req.StartTime)
		if err != nil {
			return scheduling.NewValidationError(scheduling.ReasonInvalidStart, err.Error())
		}
		e, err := scheduling.ParseClock(req.EndTime)
		if err != nil {
			return scheduling.NewValidationError(scheduling.ReasonInvalidStart, err.Error())
		}
		if s >= e {
			return scheduling.NewValidationError(scheduling.ReasonInvalidStart, "start_time must be before end_time")
		}
	}
	return nil
}

// CreateBlock handles POST /api/admin/blocks.
func (h *BlockHandler) CreateBlock(c *gin.Context) {
	var req models.BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := validateBlockRequest(req); err != nil {
		respondError(c, err)
		return
	}

	b := &models.AvailabilityBlock{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
		CreatedBy: req.CreatedBy,
	}
	if err := h.Repo.Create(c.Request.Context(), b); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// UpdateBlock handles PUT /api/admin/blocks/:id.
func (h *BlockHandler) UpdateBlock(c *gin.Context) {
	var req models.BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := validateBlockRequest(req); err != nil {
		respondError(c, err)
		return
	}

	b, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "availability block not found"})
		return
	}
	b.StartDate = req.StartDate
	b.EndDate = req.EndDate
	b.StartTime = req.StartTime
	b.EndTime = req.EndTime
	b.Reason = req.Reason

	if err := h.Repo.Update(c.Request.Context(), b); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBlocks handles GET /api/admin/blocks.
func (h *BlockHandler) ListBlocks(c *gin.Context) {
	blocks, err := h.Repo.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if blocks == nil {
		blocks = []models.AvailabilityBlock{}
	}
	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

// DeleteBlock handles DELETE /api/admin/blocks/:id.
func (h *BlockHandler) DeleteBlock(c *gin.Context) {
	if err := h.Repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "availability block not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
