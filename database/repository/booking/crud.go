package bookingRepo

import (
	"bandroom/models"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// GetByID returns a booking by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateStatusFrom conditionally flips the status; the filter on the
// current status makes the transition atomic at the document level.
func (r *mongoBookingRepo) UpdateStatusFrom(ctx context.Context, id string, from []string, to string, reason string) (bool, error) {
	now := time.Now()
	set := bson.M{
		"status":     to,
		"updated_at": now,
	}
	if to == models.BookingStatusCancelled {
		set["cancel_reason"] = reason
		set["cancelled_at"] = now
	}

	filter := bson.M{
		"id":     id,
		"status": bson.M{"$in": from},
	}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("failed to update booking status: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoBookingRepo) insert(ctx context.Context, b *models.Booking) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.Status == "" {
		b.Status = models.BookingStatusPending
	}

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}
