package scheduling

import (
	"context"
	"fmt"
	"time"

	blockRepo "bandroom/database/repository/block"
	bookingRepo "bandroom/database/repository/booking"
	"bandroom/models"
)

const dateLayout = "2006-01-02"

// Engine computes legal start times and per-day calendar flags.
type Engine struct {
	Policy    Policy
	Conflicts *ConflictDetector
	Bookings  bookingRepo.BookingRepository
	Blocks    blockRepo.BlockRepository
	Now       func() time.Time // injectable clock
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Engine) today() string {
	return e.now().In(e.Policy.Location).Format(dateLayout)
}

// ValidateDate checks the "YYYY-MM-DD" shape of a date parameter.
func ValidateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return NewValidationError(ReasonInvalidDate, fmt.Sprintf("invalid date %q, want YYYY-MM-DD", date))
	}
	return nil
}

// AvailableStarts returns the ascending "HH:MM" start times on date at
// which a booking of durHours could begin: the slot must keep the
// booking inside the day, must not overlap any active booking, and
// must not fall inside an availability block. An empty result is a
// valid answer for a fully booked or blocked day.
func (e *Engine) AvailableStarts(ctx context.Context, date string, durHours int) ([]string, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	if !e.Policy.ValidDuration(durHours) {
		return nil, NewValidationError(ReasonInvalidDuration,
			fmt.Sprintf("duration must be between %d and %d hours", e.Policy.MinDurationHours, e.Policy.MaxDurationHours))
	}

	blocks, err := e.Blocks.ListCovering(ctx, date)
	if err != nil {
		return nil, err
	}
	for _, b := range blocks {
		if b.IsFullDay() {
			return []string{}, nil
		}
	}
	windows := blockWindows(blocks)

	active, err := e.Bookings.GetActiveByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	var starts []string
	for _, s := range e.Policy.Slots() {
		if !FitsDay(s, durHours) {
			continue
		}
		if e.Conflicts.ConflictsWith(active, s, durHours, "") {
			continue
		}
		if intersectsWindow(windows, s, durHours) {
			continue
		}
		starts = append(starts, FormatClock(s))
	}
	return starts, nil
}

// DayFlags computes the calendar state of a single date.
func (e *Engine) DayFlags(ctx context.Context, date string) (models.DayFlags, error) {
	if err := ValidateDate(date); err != nil {
		return models.DayFlags{}, err
	}
	blocks, err := e.Blocks.ListCovering(ctx, date)
	if err != nil {
		return models.DayFlags{}, err
	}
	active, err := e.Bookings.GetActiveByDate(ctx, date)
	if err != nil {
		return models.DayFlags{}, err
	}
	return e.flagsFor(date, active, blocks), nil
}

// DaySchedule renders the whole slot grid for a date: each slot is
// free, blocked, or booked with the covering booking's duration.
func (e *Engine) DaySchedule(ctx context.Context, date string) ([]models.SlotInfo, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	blocks, err := e.Blocks.ListCovering(ctx, date)
	if err != nil {
		return nil, err
	}
	active, err := e.Bookings.GetActiveByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	fullDay := false
	for _, b := range blocks {
		if b.IsFullDay() {
			fullDay = true
		}
	}
	windows := blockWindows(blocks)

	grid := e.Policy.Slots()
	slots := make([]models.SlotInfo, 0, len(grid))
	for _, s := range grid {
		slots = append(slots, models.SlotInfo{
			Start:       FormatClock(s),
			BookedHours: e.Conflicts.DurationBookedAt(active, s),
			Blocked:     fullDay || coversInstant(windows, s),
		})
	}
	return slots, nil
}

// flagsFor computes flags from pre-fetched state; the month grid feeds
// it from two range queries instead of 42 single-day round trips.
func (e *Engine) flagsFor(date string, active []models.Booking, blocks []models.AvailabilityBlock) models.DayFlags {
	flags := models.DayFlags{Date: date}

	// Same-day bookings are disallowed; the earliest bookable date is
	// tomorrow.
	flags.IsPast = date <= e.today()

	for _, b := range blocks {
		if !b.ContainsDate(date) {
			continue
		}
		if b.IsFullDay() {
			flags.IsBlocked = true
		} else {
			flags.HasPartialBlock = true
		}
	}

	// Saturation heuristic, not exact occupancy: a day with this many
	// active hours gets flagged full even if a stray half-hour remains.
	booked := 0
	for _, b := range active {
		if b.Date == date {
			booked += b.DurationHours
		}
	}
	flags.IsFullyBooked = booked >= e.Policy.FullDayHours

	flags.IsSelectable = !(flags.IsPast || flags.IsBlocked || flags.IsFullyBooked)
	return flags
}

// BlocksInterval reports whether the blocks make [start, start+dur)
// unbookable on a date they cover: a full-day block blocks everything,
// a time-window block blocks overlapping intervals.
func BlocksInterval(blocks []models.AvailabilityBlock, start, durHours int) bool {
	for _, b := range blocks {
		if b.IsFullDay() {
			return true
		}
	}
	return intersectsWindow(blockWindows(blocks), start, durHours)
}

// blockWindows extracts the parsed [start, end) minute windows of
// partial-day blocks. Unparsable windows are treated as absent.
func blockWindows(blocks []models.AvailabilityBlock) [][2]int {
	var windows [][2]int
	for _, b := range blocks {
		if b.IsFullDay() {
			continue
		}
		s, err1 := ParseClock(b.StartTime)
		en, err2 := ParseClock(b.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		windows = append(windows, [2]int{s, en})
	}
	return windows
}

func coversInstant(windows [][2]int, m int) bool {
	for _, w := range windows {
		if w[0] <= m && m < w[1] {
			return true
		}
	}
	return false
}

func intersectsWindow(windows [][2]int, start, durHours int) bool {
	end := start + durHours*60
	for _, w := range windows {
		if start < w[1] && w[0] < end {
			return true
		}
	}
	return false
}
