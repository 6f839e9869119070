package scheduling

import (
	"context"
	"fmt"
	"time"

	"bandroom/models"
)

const gridCells = 42 // fixed 6x7 grid regardless of month shape

// MonthGrid renders the 42-cell calendar for a month. Cells before the
// 1st carry the trailing days of the prior month and cells after the
// last day the leading days of the next, so the UI always draws six
// full weeks. Months earlier than one calendar month before today are
// refused.
func (e *Engine) MonthGrid(ctx context.Context, year, month int) (*models.CalendarMonth, error) {
	if month < 1 || month > 12 {
		return nil, NewValidationError(ReasonInvalidDate, fmt.Sprintf("invalid month %d", month))
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, e.Policy.Location)
	floor := e.browseFloor()
	if first.Before(floor) {
		return nil, NewValidationError(ReasonMonthOutOfRange,
			fmt.Sprintf("month %04d-%02d is before the browsing floor %s", year, month, floor.Format("2006-01")))
	}

	// Left-pad to the Monday on or before the 1st.
	offset := (int(first.Weekday()) + 6) % 7
	gridStart := first.AddDate(0, 0, -offset)
	gridEnd := gridStart.AddDate(0, 0, gridCells-1)

	active, err := e.Bookings.GetActiveInRange(ctx, gridStart.Format(dateLayout), gridEnd.Format(dateLayout))
	if err != nil {
		return nil, err
	}
	blocks, err := e.Blocks.ListIntersecting(ctx, gridStart.Format(dateLayout), gridEnd.Format(dateLayout))
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]models.Booking, len(active))
	for _, b := range active {
		byDate[b.Date] = append(byDate[b.Date], b)
	}

	cells := make([]models.CalendarCell, 0, gridCells)
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		cells = append(cells, models.CalendarCell{
			Date:    date,
			Day:     d.Day(),
			InMonth: d.Month() == time.Month(month) && d.Year() == year,
			Flags:   e.flagsFor(date, byDate[date], blocks),
		})
	}

	prev := first.AddDate(0, -1, 0)
	next := first.AddDate(0, 1, 0)
	return &models.CalendarMonth{
		Year:      year,
		Month:     month,
		Cells:     cells,
		CanGoBack: !prev.Before(floor),
		PrevYear:  prev.Year(),
		PrevMonth: int(prev.Month()),
		NextYear:  next.Year(),
		NextMonth: int(next.Month()),
	}, nil
}

// browseFloor is the first day of the month one calendar month before
// today. Browsing caps there: the previous month stays reachable, and
// anything older does not.
func (e *Engine) browseFloor() time.Time {
	now := e.now().In(e.Policy.Location)
	firstOfCurrent := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, e.Policy.Location)
	return firstOfCurrent.AddDate(0, -1, 0)
}
