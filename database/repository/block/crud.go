package blockRepo

import (
	"bandroom/models"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new availability block.
func (r *mongoBlockRepo) Create(ctx context.Context, b *models.AvailabilityBlock) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to insert availability block: %w", err)
	}
	return nil
}

// GetByID returns a block by its ID.
func (r *mongoBlockRepo) GetByID(ctx context.Context, id string) (*models.AvailabilityBlock, error) {
	var b models.AvailabilityBlock
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Update replaces the mutable fields of an existing block.
func (r *mongoBlockRepo) Update(ctx context.Context, b *models.AvailabilityBlock) error {
	b.UpdatedAt = time.Now()
	set := bson.M{
		"start_date": b.StartDate,
		"end_date":   b.EndDate,
		"start_time": b.StartTime,
		"end_time":   b.EndTime,
		"reason":     b.Reason,
		"updated_at": b.UpdatedAt,
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": b.ID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update availability block: %w", err)
	}
	if res.MatchedCount == 0 {
		return errors.New("availability block not found")
	}
	return nil
}

// DeleteByID removes a block by ID.
func (r *mongoBlockRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("availability block not found")
	}
	return nil
}
