package scheduling

import (
	"context"

	bookingRepo "bandroom/database/repository/booking"
	"bandroom/models"
	"bandroom/utils"

	"go.uber.org/zap"
)

// ConflictDetector decides whether a candidate reservation overlaps
// any active booking. Pending and approved bookings both hold their
// slot; rejected and cancelled ones never conflict.
type ConflictDetector struct {
	Repo bookingRepo.BookingRepository
}

// HasConflict reports whether any active booking on date, other than
// excludeID, overlaps [start, start+durHours). Pass ctx from a store
// transaction to make the check part of a check-then-act unit.
func (cd *ConflictDetector) HasConflict(ctx context.Context, date string, start, durHours int, excludeID string) (bool, error) {
	active, err := cd.Repo.GetActiveByDate(ctx, date)
	if err != nil {
		return false, err
	}
	return cd.ConflictsWith(active, start, durHours, excludeID), nil
}

// ConflictsWith runs the overlap scan over an already-fetched booking
// list. The availability engine uses this to check a whole day of
// candidate slots against one fetch.
func (cd *ConflictDetector) ConflictsWith(active []models.Booking, start, durHours int, excludeID string) bool {
	logger := utils.GetLogger()
	for _, b := range active {
		if b.ID == excludeID {
			continue
		}
		bStart, err := ParseClock(b.StartTime)
		if err != nil {
			// Stored bookings are validated at create; an unparsable
			// start means corrupt data, not a free slot.
			logger.Warn("skipping booking with unparsable start time",
				zap.String("bookingID", b.ID), zap.String("startTime", b.StartTime))
			continue
		}
		if Overlaps(start, durHours, bStart, b.DurationHours) {
			return true
		}
	}
	return false
}

// DurationBookedAt returns the duration in hours of the single active
// booking whose interval covers start, or 0 if the moment is free.
// The day schedule uses it to render "booked, 2h" rather than a bare
// unavailable marker. Like ConflictsWith it scans an already-fetched
// list so a whole day costs one fetch.
func (cd *ConflictDetector) DurationBookedAt(active []models.Booking, start int) int {
	for _, b := range active {
		bStart, err := ParseClock(b.StartTime)
		if err != nil {
			continue
		}
		if bStart <= start && start < bStart+b.DurationHours*60 {
			return b.DurationHours
		}
	}
	return 0
}
