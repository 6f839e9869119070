package blockRepo

import (
	"bandroom/database"
	"bandroom/models"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// BlockRepository persists availability blocks (maintenance/closure
// windows). Blocks have an independent staff-managed lifecycle.
type BlockRepository interface {
	Create(ctx context.Context, b *models.AvailabilityBlock) error
	GetByID(ctx context.Context, id string) (*models.AvailabilityBlock, error)
	Update(ctx context.Context, b *models.AvailabilityBlock) error
	DeleteByID(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]models.AvailabilityBlock, error)
	// ListCovering returns every block whose date range contains the
	// given date, full-day and time-window blocks alike.
	ListCovering(ctx context.Context, date string) ([]models.AvailabilityBlock, error)
	// ListIntersecting returns blocks whose range intersects
	// [fromDate, toDate], used to flag a calendar month in one query.
	ListIntersecting(ctx context.Context, fromDate, toDate string) ([]models.AvailabilityBlock, error)
	EnsureIndexes() error
}

type mongoBlockRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockRepo constructs a new MongoDB BlockRepository.
func NewMongoBlockRepo() BlockRepository {
	db := database.MongoClient.Database("bandroom")
	return &mongoBlockRepo{
		coll: db.Collection("availability_blocks"),
	}
}
