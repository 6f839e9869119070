package models

// DayFlags carries the per-day state the booking calendar renders.
type DayFlags struct {
	Date            string `json:"date"`
	IsPast          bool   `json:"isPast"`    // today or earlier; earliest bookable date is tomorrow
	IsBlocked       bool   `json:"isBlocked"` // covered by a full-day availability block
	IsFullyBooked   bool   `json:"isFullyBooked"`
	IsSelectable    bool   `json:"isSelectable"`
	HasPartialBlock bool   `json:"hasPartialBlock,omitempty"` // a time-window block intersects this date
}

// SlotInfo is one grid slot in a day schedule. A booked slot carries
// the covering booking's duration so the UI can render "booked, 2h"
// rather than a bare unavailable marker.
type SlotInfo struct {
	Start       string `json:"start"`                 // "HH:MM"
	BookedHours int    `json:"bookedHours,omitempty"` // 0 when free
	Blocked     bool   `json:"blocked,omitempty"`
}

// CalendarCell is one cell of the fixed 6x7 month grid. Cells padded
// from the adjacent months carry InMonth=false.
type CalendarCell struct {
	Date    string   `json:"date"`
	Day     int      `json:"day"`
	InMonth bool     `json:"inMonth"`
	Flags   DayFlags `json:"flags"`
}

// CalendarMonth is the 42-cell grid for one month plus navigation
// hints for the UI.
type CalendarMonth struct {
	Year        int            `json:"year"`
	Month       int            `json:"month"` // 1..12
	Cells       []CalendarCell `json:"cells"` // always 42
	CanGoBack   bool           `json:"canGoBack"`
	PrevYear    int            `json:"prevYear"`
	PrevMonth   int            `json:"prevMonth"`
	NextYear    int            `json:"nextYear"`
	NextMonth   int            `json:"nextMonth"`
}
