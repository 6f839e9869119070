package handlers

import (
	"net/http"

	bookingRepo "bandroom/database/repository/booking"
	"bandroom/models"
	"bandroom/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the reservation lifecycle: public creation and
// the staff approve/reject/cancel operations. Authorization of the
// staff surface is the caller's concern.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListBookings handles GET /api/admin/bookings?status=&date=.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	f := bookingRepo.Filter{
		Status: c.Query("status"),
		Date:   c.Query("date"),
	}
	bookings, err := h.Service.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBooking handles GET /api/admin/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ApproveBooking handles POST /api/admin/bookings/:id/approve.
func (h *BookingHandler) ApproveBooking(c *gin.Context) {
	artifact, err := h.Service.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.BookingStatusApproved, "artifact": artifact})
}

// RejectBooking handles POST /api/admin/bookings/:id/reject.
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	if err := h.Service.Reject(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.BookingStatusRejected})
}

// CancelBooking handles POST /api/admin/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	// The reason is optional; an empty body is a bare cancellation.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
	}

	artifact, err := h.Service.Cancel(c.Request.Context(), c.Param("id"), input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.BookingStatusCancelled, "artifact": artifact})
}
