package bookingRepo

import (
	"bandroom/models"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// withTransaction runs fn inside a single Mongo transaction so the
// {conflict check, write} pair executes as one atomic unit. Without it
// two concurrent requests for the same slot could both pass the check
// and both be admitted.
func (r *mongoBookingRepo) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

// CreateGuarded inserts the booking only if the guard succeeds within
// the same transaction.
func (r *mongoBookingRepo) CreateGuarded(ctx context.Context, b *models.Booking, guard func(ctx context.Context) error) error {
	return r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		if err := guard(sc); err != nil {
			return err
		}
		return r.insert(sc, b)
	})
}

// ApproveGuarded re-runs the guard and flips pending→approved in one
// transaction, reporting whether the flip matched a pending booking.
func (r *mongoBookingRepo) ApproveGuarded(ctx context.Context, id string, guard func(ctx context.Context) error) (bool, error) {
	matched := false
	err := r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		if err := guard(sc); err != nil {
			return err
		}
		ok, err := r.UpdateStatusFrom(sc, id, []string{models.BookingStatusPending}, models.BookingStatusApproved, "")
		if err != nil {
			return err
		}
		if !ok {
			// Nothing matched; commit the no-op and let the caller
			// surface the transition failure.
			matched = false
			return nil
		}
		matched = true
		return nil
	})
	return matched, err
}
