package bookingRepo

import (
	"bandroom/database"
	"bandroom/models"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// Filter narrows booking list queries for the staff dashboard.
type Filter struct {
	Status string // exact status, empty for all
	Date   string // exact date "YYYY-MM-DD", empty for all
}

// BookingRepository persists reservations. Records are never deleted;
// rejection and cancellation are status changes.
type BookingRepository interface {
	// CreateGuarded inserts the booking inside a transaction after the
	// guard succeeds. The guard receives the session context so its
	// reads observe the transaction snapshot; if it returns an error
	// the insert is aborted and the error propagated unchanged.
	CreateGuarded(ctx context.Context, b *models.Booking, guard func(ctx context.Context) error) error

	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetActiveByDate(ctx context.Context, date string) ([]models.Booking, error)
	GetActiveInRange(ctx context.Context, fromDate, toDate string) ([]models.Booking, error)
	List(ctx context.Context, f Filter) ([]models.Booking, error)

	// UpdateStatusFrom flips status to `to` only if the current status
	// is one of `from`, reporting whether a document matched. A
	// non-empty reason is recorded alongside a cancellation.
	UpdateStatusFrom(ctx context.Context, id string, from []string, to string, reason string) (bool, error)

	// ApproveGuarded runs the guard and the pending→approved flip as
	// one transaction, reporting whether the flip matched.
	ApproveGuarded(ctx context.Context, id string, guard func(ctx context.Context) error) (bool, error)

	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("bandroom")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}

// ErrNotFound is returned for lookups of unknown booking ids.
var ErrNotFound = mongo.ErrNoDocuments
