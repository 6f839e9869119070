// File: database/repository/block/queries.go
package blockRepo

import (
	"bandroom/models"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListAll returns every block, most recent range first.
func (r *mongoBlockRepo) ListAll(ctx context.Context) ([]models.AvailabilityBlock, error) {
	return r.find(ctx, bson.M{})
}

// ListCovering returns blocks whose [start_date, end_date] contains date.
func (r *mongoBlockRepo) ListCovering(ctx context.Context, date string) ([]models.AvailabilityBlock, error) {
	filter := bson.M{
		"start_date": bson.M{"$lte": date},
		"end_date":   bson.M{"$gte": date},
	}
	return r.find(ctx, filter)
}

// ListIntersecting returns blocks whose range intersects [fromDate, toDate].
func (r *mongoBlockRepo) ListIntersecting(ctx context.Context, fromDate, toDate string) ([]models.AvailabilityBlock, error) {
	filter := bson.M{
		"start_date": bson.M{"$lte": toDate},
		"end_date":   bson.M{"$gte": fromDate},
	}
	return r.find(ctx, filter)
}

func (r *mongoBlockRepo) find(ctx context.Context, filter bson.M) ([]models.AvailabilityBlock, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability blocks: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.AvailabilityBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("error decoding availability blocks: %w", err)
	}
	return blocks, nil
}
