package routes

import (
	"bandroom/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all endpoints for the scheduling engine.
func RegisterRoutes(r *gin.Engine, h *handlers.HandlerBundle) {
	availability := r.Group("/api/availability")
	{
		availability.GET("/starts", h.Availability.GetAvailableStarts)
		availability.GET("/day/:date", h.Availability.GetDayFlags)
		availability.GET("/day/:date/slots", h.Availability.GetDaySchedule)
		availability.GET("/calendar/:year/:month", h.Availability.GetCalendarMonth)
	}

	r.POST("/api/bookings", h.Booking.CreateBooking)

	// Staff surface; authorization is handled upstream of this service.
	admin := r.Group("/api/admin")
	{
		admin.GET("/bookings", h.Booking.ListBookings)
		admin.GET("/bookings/:id", h.Booking.GetBooking)
		admin.POST("/bookings/:id/approve", h.Booking.ApproveBooking)
		admin.POST("/bookings/:id/reject", h.Booking.RejectBooking)
		admin.POST("/bookings/:id/cancel", h.Booking.CancelBooking)

		admin.POST("/blocks", h.Block.CreateBlock)
		admin.GET("/blocks", h.Block.ListBlocks)
		admin.PUT("/blocks/:id", h.Block.UpdateBlock)
		admin.DELETE("/blocks/:id", h.Block.DeleteBlock)
	}
}
