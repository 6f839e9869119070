package notification

import (
	"fmt"
	"strings"
	"time"

	"bandroom/models"
	"bandroom/services/scheduling"
)

// ArtifactGenerator renders booking transitions into minimal
// calendar-interchange records. Generation is deterministic apart from
// the DTSTAMP: the UID derives from the booking id, so regenerating a
// CANCEL reproduces the UID of the original PUBLISH.
type ArtifactGenerator struct {
	Domain         string // UID host part, e.g. "bandroom.local"
	OrganizerEmail string
	OrganizerName  string
	Location       *time.Location
	Now            func() time.Time // injectable clock
}

func (g *ArtifactGenerator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

// Build derives the artifact for a booking and a method.
func (g *ArtifactGenerator) Build(b *models.Booking, method string) (*models.CalendarArtifact, error) {
	if method != models.ArtifactMethodPublish && method != models.ArtifactMethodCancel {
		return nil, fmt.Errorf("unknown artifact method %q", method)
	}

	day, err := time.ParseInLocation("2006-01-02", b.Date, g.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid booking date %q: %w", b.Date, err)
	}
	startMin, err := scheduling.ParseClock(b.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid booking start time: %w", err)
	}

	start := day.Add(time.Duration(startMin) * time.Minute)
	end := start.Add(time.Duration(b.DurationHours) * time.Hour)

	sequence := 0
	if method == models.ArtifactMethodCancel {
		sequence = 1
	}

	return &models.CalendarArtifact{
		Method:        method,
		UID:           fmt.Sprintf("booking-%s@%s", b.ID, g.Domain),
		Start:         start,
		End:           end,
		Summary:       fmt.Sprintf("Practice room: %s", b.BandName),
		Organizer:     g.OrganizerEmail,
		OrganizerName: g.OrganizerName,
		Attendee:      b.Email,
		Sequence:      sequence,
		GeneratedAt:   g.now(),
	}, nil
}

// RenderICS serializes an artifact as an iCalendar text record,
// CRLF-terminated per RFC 5545. Times are venue-local floating times.
func RenderICS(a models.CalendarArtifact) string {
	status := "CONFIRMED"
	if a.Method == models.ArtifactMethodCancel {
		status = "CANCELLED"
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Bandroom//Scheduler//EN",
		"METHOD:" + a.Method,
		"BEGIN:VEVENT",
		"UID:" + a.UID,
		"DTSTAMP:" + a.GeneratedAt.UTC().Format("20060102T150405Z"),
		"DTSTART:" + a.Start.Format("20060102T150405"),
		"DTEND:" + a.End.Format("20060102T150405"),
		"SUMMARY:" + escapeText(a.Summary),
		fmt.Sprintf("SEQUENCE:%d", a.Sequence),
		"STATUS:" + status,
		organizerLine(a),
		"ATTENDEE:mailto:" + a.Attendee,
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}

// organizerLine renders the organizer with a CN display-name parameter
// when one is configured. Parameter values containing reserved
// characters need DQUOTE quoting rather than TEXT escaping.
func organizerLine(a models.CalendarArtifact) string {
	if a.OrganizerName == "" {
		return "ORGANIZER:mailto:" + a.Organizer
	}
	name := a.OrganizerName
	if strings.ContainsAny(name, ";:,") {
		name = `"` + name + `"`
	}
	return fmt.Sprintf("ORGANIZER;CN=%s:mailto:%s", name, a.Organizer)
}

// escapeText escapes the characters RFC 5545 reserves in TEXT values.
func escapeText(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return r.Replace(s)
}
