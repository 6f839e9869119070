package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "bandroom/database/repository/booking"
	"bandroom/models"
	"bandroom/services/scheduling"
	"bandroom/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) today() string {
	return s.now().In(s.Policy.Location).Format(dateLayout)
}

// Create validates the request and inserts a pending booking. The
// conflict check and the insert run as one transaction; on any
// validation failure no state is created and the error names the
// specific reason.
func (s *DefaultBookingService) Create(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if err := scheduling.ValidateDate(req.Date); err != nil {
		return nil, err
	}
	start, err := scheduling.ParseClock(req.StartTime)
	if err != nil {
		return nil, scheduling.NewValidationError(scheduling.ReasonInvalidStart,
			fmt.Sprintf("invalid start time %q, want HH:MM", req.StartTime))
	}
	if !s.Policy.OnGrid(start) {
		return nil, scheduling.NewValidationError(scheduling.ReasonInvalidStart,
			fmt.Sprintf("start %s is not a bookable slot", req.StartTime))
	}
	if !s.Policy.ValidDuration(req.DurationHours) {
		return nil, scheduling.NewValidationError(scheduling.ReasonInvalidDuration,
			fmt.Sprintf("duration must be between %d and %d hours", s.Policy.MinDurationHours, s.Policy.MaxDurationHours))
	}
	if !scheduling.FitsDay(start, req.DurationHours) {
		return nil, scheduling.NewValidationError(scheduling.ReasonCrossesMidnight,
			fmt.Sprintf("a %dh booking at %s would cross midnight", req.DurationHours, req.StartTime))
	}
	if req.Date <= s.today() {
		return nil, scheduling.NewValidationError(scheduling.ReasonPastDate,
			"bookings open from tomorrow onwards")
	}

	blocks, err := s.Blocks.ListCovering(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	if scheduling.BlocksInterval(blocks, start, req.DurationHours) {
		return nil, scheduling.NewValidationError(scheduling.ReasonBlocked,
			fmt.Sprintf("the room is unavailable on %s for that time", req.Date))
	}

	b := &models.Booking{
		Date:          req.Date,
		StartTime:     req.StartTime,
		DurationHours: req.DurationHours,
		BandName:      req.BandName,
		Email:         req.Email,
		Phone:         req.Phone,
		MembersCount:  req.MembersCount,
		Notes:         req.Notes,
		Status:        models.BookingStatusPending,
	}

	err = s.Repo.CreateGuarded(ctx, b, func(sc context.Context) error {
		conflict, err := s.Conflicts.HasConflict(sc, req.Date, start, req.DurationHours, "")
		if err != nil {
			return err
		}
		if conflict {
			return scheduling.NewValidationError(scheduling.ReasonConflict,
				fmt.Sprintf("the slot %s %s overlaps an existing booking", req.Date, req.StartTime))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingID", b.ID), zap.String("date", b.Date),
		zap.String("start", b.StartTime), zap.Int("hours", b.DurationHours))
	return b, nil
}

// Approve moves a pending booking to approved. The conflict check is
// re-run defensively inside the transaction: the booking could have
// been invalidated by a block or another approval since submission.
// On success a PUBLISH calendar artifact is generated and queued for
// delivery.
func (s *DefaultBookingService) Approve(ctx context.Context, id string) (*models.CalendarArtifact, error) {
	b, err := s.load(ctx, "approve", id)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingStatusPending {
		return nil, newInvalidTransition("approve", id, b.Status)
	}

	start, err := scheduling.ParseClock(b.StartTime)
	if err != nil {
		return nil, fmt.Errorf("stored booking %s has invalid start time: %w", id, err)
	}

	blocks, err := s.Blocks.ListCovering(ctx, b.Date)
	if err != nil {
		return nil, err
	}
	if scheduling.BlocksInterval(blocks, start, b.DurationHours) {
		return nil, scheduling.NewValidationError(scheduling.ReasonBlocked,
			fmt.Sprintf("the room is now blocked on %s", b.Date))
	}

	matched, err := s.Repo.ApproveGuarded(ctx, id, func(sc context.Context) error {
		conflict, err := s.Conflicts.HasConflict(sc, b.Date, start, b.DurationHours, b.ID)
		if err != nil {
			return err
		}
		if conflict {
			return scheduling.NewValidationError(scheduling.ReasonConflict,
				fmt.Sprintf("booking %s now overlaps another active booking", id))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !matched {
		// Raced with another transition since the load above.
		fresh, loadErr := s.load(ctx, "approve", id)
		status := ""
		if loadErr == nil {
			status = fresh.Status
		}
		return nil, newInvalidTransition("approve", id, status)
	}

	b.Status = models.BookingStatusApproved
	utils.GetLogger().Info("booking approved", zap.String("bookingID", id))
	return s.Notifier.BookingApproved(ctx, b)
}

// Reject moves a pending booking to rejected, freeing its slot
// immediately. No re-validation and no artifact: the client is not on
// the calendar yet.
func (s *DefaultBookingService) Reject(ctx context.Context, id string) error {
	b, err := s.load(ctx, "reject", id)
	if err != nil {
		return err
	}
	if b.Status != models.BookingStatusPending {
		return newInvalidTransition("reject", id, b.Status)
	}

	ok, err := s.Repo.UpdateStatusFrom(ctx, id, []string{models.BookingStatusPending}, models.BookingStatusRejected, "")
	if err != nil {
		return err
	}
	if !ok {
		return newInvalidTransition("reject", id, b.Status)
	}
	utils.GetLogger().Info("booking rejected", zap.String("bookingID", id))
	return nil
}

// Cancel moves a pending or approved booking to cancelled, records the
// reason, and emits a CANCEL artifact sharing the PUBLISH artifact's
// UID so calendar clients can correlate the pair. The slot is freed
// immediately.
func (s *DefaultBookingService) Cancel(ctx context.Context, id, reason string) (*models.CalendarArtifact, error) {
	b, err := s.load(ctx, "cancel", id)
	if err != nil {
		return nil, err
	}
	if b.IsTerminal() {
		return nil, newInvalidTransition("cancel", id, b.Status)
	}

	ok, err := s.Repo.UpdateStatusFrom(ctx, id,
		[]string{models.BookingStatusPending, models.BookingStatusApproved},
		models.BookingStatusCancelled, reason)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, newInvalidTransition("cancel", id, b.Status)
	}

	b.Status = models.BookingStatusCancelled
	b.CancelReason = reason
	utils.GetLogger().Info("booking cancelled",
		zap.String("bookingID", id), zap.String("reason", reason))
	return s.Notifier.BookingCancelled(ctx, b)
}

// Get returns a booking by id.
func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns bookings for the staff dashboard.
func (s *DefaultBookingService) List(ctx context.Context, f bookingRepo.Filter) ([]models.Booking, error) {
	return s.Repo.List(ctx, f)
}

func (s *DefaultBookingService) load(ctx context.Context, op, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, newInvalidTransition(op, id, "")
		}
		return nil, err
	}
	return b, nil
}
