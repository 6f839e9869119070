package scheduling

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// ParseClock converts an "HH:MM" wall-clock string to minutes since
// midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Slots returns the ordered universe of candidate start times for any
// day: open, open+step, ..., close (inclusive), as minutes since
// midnight. The grid is the same for every date; what varies per date
// is which slots survive conflict and block filtering.
func (p Policy) Slots() []int {
	if p.StepMinutes <= 0 || p.CloseMinutes < p.OpenMinutes {
		return nil
	}
	slots := make([]int, 0, (p.CloseMinutes-p.OpenMinutes)/p.StepMinutes+1)
	for s := p.OpenMinutes; s <= p.CloseMinutes; s += p.StepMinutes {
		slots = append(slots, s)
	}
	return slots
}

// OnGrid reports whether start is a legal grid slot: within the
// open/close bounds and aligned to the step.
func (p Policy) OnGrid(start int) bool {
	if start < p.OpenMinutes || start > p.CloseMinutes {
		return false
	}
	return (start-p.OpenMinutes)%p.StepMinutes == 0
}
