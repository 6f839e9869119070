package handlers

import (
	"errors"
	"net/http"

	bookingRepo "bandroom/database/repository/booking"
	"bandroom/services/booking"
	"bandroom/services/scheduling"
	"bandroom/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps engine errors onto the HTTP surface:
// validation failures carry their specific reason so the UI can show
// an actionable message, transition violations are stale-client
// conflicts, and anything else is treated as the store being
// unreachable (retryable by the caller, never by the engine).
func respondError(c *gin.Context, err error) {
	if ve, ok := scheduling.AsValidation(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ve.Message, "code": ve.Code})
		return
	}
	if ite, ok := booking.AsInvalidTransition(err); ok {
		c.JSON(http.StatusConflict, gin.H{"error": ite.Error()})
		return
	}
	if errors.Is(err, bookingRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	utils.JSONError(c, http.StatusServiceUnavailable, "booking store unavailable", err.Error())
}
