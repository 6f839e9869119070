package models

import "time"

// AvailabilityBlock marks part or all of a date range as unbookable
// (maintenance, private events, holidays). A block without a time
// window covers whole days; one with a window covers only that window
// on each day in range.
type AvailabilityBlock struct {
	ID        string    `bson:"id" json:"id"`
	StartDate string    `bson:"start_date" json:"start_date"` // "YYYY-MM-DD", inclusive
	EndDate   string    `bson:"end_date" json:"end_date"`     // "YYYY-MM-DD", inclusive
	StartTime string    `bson:"start_time,omitempty" json:"start_time,omitempty"` // "HH:MM"
	EndTime   string    `bson:"end_time,omitempty" json:"end_time,omitempty"`     // "HH:MM"
	Reason    string    `bson:"reason" json:"reason"`
	CreatedBy string    `bson:"created_by" json:"created_by"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsFullDay reports whether the block covers entire days rather than a
// time window.
func (b AvailabilityBlock) IsFullDay() bool {
	return b.StartTime == "" && b.EndTime == ""
}

// ContainsDate reports whether date falls inside the block's range.
// ISO dates compare correctly as strings.
func (b AvailabilityBlock) ContainsDate(date string) bool {
	return b.StartDate <= date && date <= b.EndDate
}

// BlockRequest is the payload for creating or updating a block.
type BlockRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason" binding:"required"`
	CreatedBy string `json:"created_by"`
}
