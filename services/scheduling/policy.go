package scheduling

import (
	"fmt"
	"time"

	"bandroom/config"
)

// Policy carries the room schedule parameters the engine runs on.
// Everything here arrives from configuration so the engine stays free
// of global state and hard-coded business hours.
type Policy struct {
	OpenMinutes      int // first bookable start, minutes since midnight
	CloseMinutes     int // last bookable start, minutes since midnight
	StepMinutes      int
	MinDurationHours int
	MaxDurationHours int
	FullDayHours     int // booked hours at which a day counts as fully booked
	Location         *time.Location
}

// PolicyFromConfig builds the schedule policy from the loaded app
// configuration.
func PolicyFromConfig(cfg config.Config) (Policy, error) {
	open, err := ParseClock(cfg.OpenTime)
	if err != nil {
		return Policy{}, fmt.Errorf("OPEN_TIME: %w", err)
	}
	close, err := ParseClock(cfg.CloseTime)
	if err != nil {
		return Policy{}, fmt.Errorf("CLOSE_TIME: %w", err)
	}
	loc := time.Local
	if cfg.Timezone != "" && cfg.Timezone != "Local" {
		loc, err = time.LoadLocation(cfg.Timezone)
		if err != nil {
			return Policy{}, fmt.Errorf("TIMEZONE: %w", err)
		}
	}
	p := Policy{
		OpenMinutes:      open,
		CloseMinutes:     close,
		StepMinutes:      cfg.SlotStepMinutes,
		MinDurationHours: cfg.MinDurationHours,
		MaxDurationHours: cfg.MaxDurationHours,
		FullDayHours:     cfg.FullDayHours,
		Location:         loc,
	}
	if p.StepMinutes <= 0 {
		return Policy{}, fmt.Errorf("SLOT_STEP_MINUTES must be positive, got %d", p.StepMinutes)
	}
	if p.CloseMinutes < p.OpenMinutes {
		return Policy{}, fmt.Errorf("CLOSE_TIME %s before OPEN_TIME %s", cfg.CloseTime, cfg.OpenTime)
	}
	return p, nil
}

// ValidDuration reports whether the requested duration is inside the
// configured bounds.
func (p Policy) ValidDuration(hours int) bool {
	return hours >= p.MinDurationHours && hours <= p.MaxDurationHours
}
