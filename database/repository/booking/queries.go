// File: database/repository/booking/queries.go
package bookingRepo

import (
	"bandroom/models"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var activeStatuses = []string{models.BookingStatusPending, models.BookingStatusApproved}

// GetActiveByDate fetches the pending and approved bookings on a date.
func (r *mongoBookingRepo) GetActiveByDate(ctx context.Context, date string) ([]models.Booking, error) {
	filter := bson.M{
		"date":   date,
		"status": bson.M{"$in": activeStatuses},
	}
	return r.find(ctx, filter)
}

// GetActiveInRange fetches the active bookings on any date in
// [fromDate, toDate], used to flag a whole calendar month in one query.
func (r *mongoBookingRepo) GetActiveInRange(ctx context.Context, fromDate, toDate string) ([]models.Booking, error) {
	filter := bson.M{
		"date":   bson.M{"$gte": fromDate, "$lte": toDate},
		"status": bson.M{"$in": activeStatuses},
	}
	return r.find(ctx, filter)
}

// List returns bookings matching the dashboard filter, newest first.
func (r *mongoBookingRepo) List(ctx context.Context, f Filter) ([]models.Booking, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Date != "" {
		filter["date"] = f.Date
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
