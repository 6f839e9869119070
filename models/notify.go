package models

// NotifyPayload is the asynq task payload for booking notification
// mail. The worker re-reads the booking and regenerates the calendar
// artifact from it, so the payload stays minimal.
type NotifyPayload struct {
	BookingID string `json:"bookingId"`
	Method    string `json:"method"` // PUBLISH or CANCEL
}
