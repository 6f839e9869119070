package booking

import (
	"context"
	"time"

	blockRepo "bandroom/database/repository/block"
	bookingRepo "bandroom/database/repository/booking"
	"bandroom/models"
	"bandroom/services/notification"
	"bandroom/services/scheduling"
)

// BookingService governs the reservation lifecycle: creation and the
// pending → approved / rejected / cancelled transitions. It trusts an
// already-authorized caller for the staff operations.
type BookingService interface {
	Create(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	Approve(ctx context.Context, id string) (*models.CalendarArtifact, error)
	Reject(ctx context.Context, id string) error
	Cancel(ctx context.Context, id, reason string) (*models.CalendarArtifact, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, f bookingRepo.Filter) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Blocks    blockRepo.BlockRepository
	Conflicts *scheduling.ConflictDetector
	Policy    scheduling.Policy
	Notifier  notification.NotificationService
	Now       func() time.Time // injectable clock
}
