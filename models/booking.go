package models

import "time"

// Booking statuses. A booking is created as pending and only ever
// changes status through the lifecycle service; records are never
// physically deleted.
const (
	BookingStatusPending   = "pending"
	BookingStatusApproved  = "approved"
	BookingStatusRejected  = "rejected"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a practice-room reservation.
type Booking struct {
	ID            string     `bson:"id" json:"id"`
	Date          string     `bson:"date" json:"date"`                     // "YYYY-MM-DD"
	StartTime     string     `bson:"start_time" json:"start_time"`         // "HH:MM", slot-step aligned
	DurationHours int        `bson:"duration_hours" json:"duration_hours"` // 1..4
	BandName      string     `bson:"band_name" json:"band_name"`
	Email         string     `bson:"email" json:"email"`
	Phone         string     `bson:"phone,omitempty" json:"phone,omitempty"`
	MembersCount  int        `bson:"members_count" json:"members_count"`
	Notes         string     `bson:"notes,omitempty" json:"notes,omitempty"`
	Status        string     `bson:"status" json:"status"`
	CancelReason  string     `bson:"cancel_reason,omitempty" json:"cancel_reason,omitempty"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `bson:"updated_at" json:"updated_at"`
	CancelledAt   *time.Time `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
}

// IsActive reports whether the booking still holds its slot. Both
// pending and approved bookings block the slot; only rejection or
// cancellation frees it.
func (b Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusApproved
}

// IsTerminal reports whether no further status transition is allowed.
func (b Booking) IsTerminal() bool {
	return b.Status == BookingStatusRejected || b.Status == BookingStatusCancelled
}

// BookingRequest is the payload for creating a reservation.
type BookingRequest struct {
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"`
	DurationHours int    `json:"duration_hours" binding:"required"`
	BandName      string `json:"band_name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	MembersCount  int    `json:"members_count" binding:"required"`
	Notes         string `json:"notes"`
}
