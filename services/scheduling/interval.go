package scheduling

// Overlaps reports whether two half-open booking intervals collide.
// Starts are minutes since midnight, durations in hours. Half-open
// means a booking ending exactly when another begins does not
// conflict.
func Overlaps(startA, durHoursA, startB, durHoursB int) bool {
	return startA < startB+durHoursB*60 && startB < startA+durHoursA*60
}

// FitsDay reports whether a booking starting at start (minutes since
// midnight) with the given duration ends by midnight.
func FitsDay(start, durHours int) bool {
	return start+durHours*60 <= minutesPerDay
}
