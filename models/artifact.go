package models

import "time"

// Calendar-interchange methods.
const (
	ArtifactMethodPublish = "PUBLISH"
	ArtifactMethodCancel  = "CANCEL"
)

// CalendarArtifact is the derived calendar-interchange record emitted
// when a booking is approved or cancelled. It is not primary state:
// everything but GeneratedAt is reproducible from the booking it
// describes plus the method, and the UID is stable across
// regeneration so calendar clients can correlate PUBLISH/CANCEL pairs.
type CalendarArtifact struct {
	Method        string    `json:"method"` // PUBLISH or CANCEL
	UID           string    `json:"uid"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Summary       string    `json:"summary"`
	Organizer     string    `json:"organizer"`
	OrganizerName string    `json:"organizerName,omitempty"`
	Attendee      string    `json:"attendee"`
	Sequence      int       `json:"sequence"`
	GeneratedAt   time.Time `json:"generatedAt"`
}
