package scheduling

import (
	"context"
	"testing"

	"bandroom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGridShape(t *testing.T) {
	engine := newTestEngine(&fakeBookingRepo{}, &fakeBlockRepo{}, frozenNow)

	grid, err := engine.MonthGrid(context.Background(), 2026, 9)
	require.NoError(t, err)
	require.Len(t, grid.Cells, 42)

	// September 1st 2026 is a Tuesday, so the grid opens on Monday the
	// 31st of August.
	assert.Equal(t, "2026-08-31", grid.Cells[0].Date)
	assert.False(t, grid.Cells[0].InMonth)
	assert.Equal(t, "2026-09-01", grid.Cells[1].Date)
	assert.True(t, grid.Cells[1].InMonth)
	assert.Equal(t, "2026-09-30", grid.Cells[30].Date)
	assert.True(t, grid.Cells[30].InMonth)
	assert.Equal(t, "2026-10-01", grid.Cells[31].Date)
	assert.False(t, grid.Cells[31].InMonth)
	assert.Equal(t, "2026-10-11", grid.Cells[41].Date)
}

func TestMonthGridNavigation(t *testing.T) {
	engine := newTestEngine(&fakeBookingRepo{}, &fakeBlockRepo{}, frozenNow)

	grid, err := engine.MonthGrid(context.Background(), 2026, 9)
	require.NoError(t, err)
	assert.True(t, grid.CanGoBack, "previous month sits exactly on the floor")
	assert.Equal(t, 2026, grid.PrevYear)
	assert.Equal(t, 8, grid.PrevMonth)
	assert.Equal(t, 10, grid.NextMonth)

	grid, err = engine.MonthGrid(context.Background(), 2026, 8)
	require.NoError(t, err)
	assert.False(t, grid.CanGoBack)

	grid, err = engine.MonthGrid(context.Background(), 2026, 12)
	require.NoError(t, err)
	assert.Equal(t, 2027, grid.NextYear)
	assert.Equal(t, 1, grid.NextMonth)
}

func TestMonthGridBrowsingFloor(t *testing.T) {
	engine := newTestEngine(&fakeBookingRepo{}, &fakeBlockRepo{}, frozenNow)

	_, err := engine.MonthGrid(context.Background(), 2026, 7)
	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, ReasonMonthOutOfRange, ve.Code)

	_, err = engine.MonthGrid(context.Background(), 2026, 13)
	ve, ok = AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, ReasonInvalidDate, ve.Code)
}

func TestMonthGridCellFlags(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []models.Booking{
		activeBooking("b1", "2026-09-10", "09:00", 4, models.BookingStatusApproved),
		activeBooking("b2", "2026-09-10", "13:00", 4, models.BookingStatusApproved),
		activeBooking("b3", "2026-09-10", "17:00", 4, models.BookingStatusPending),
		activeBooking("b4", "2026-09-10", "21:00", 1, models.BookingStatusPending),
	}}
	blocks := &fakeBlockRepo{blocks: []models.AvailabilityBlock{
		{ID: "blk1", StartDate: "2026-09-15", EndDate: "2026-09-16", Reason: "festival rental"},
	}}
	engine := newTestEngine(bookings, blocks, frozenNow)

	grid, err := engine.MonthGrid(context.Background(), 2026, 9)
	require.NoError(t, err)

	cells := make(map[string]models.CalendarCell, len(grid.Cells))
	for _, c := range grid.Cells {
		cells[c.Date] = c
	}

	assert.True(t, cells["2026-09-10"].Flags.IsFullyBooked)
	assert.False(t, cells["2026-09-10"].Flags.IsSelectable)
	assert.True(t, cells["2026-09-15"].Flags.IsBlocked)
	assert.True(t, cells["2026-09-16"].Flags.IsBlocked)
	assert.False(t, cells["2026-09-17"].Flags.IsBlocked)
	assert.True(t, cells["2026-09-01"].Flags.IsPast, "today is never selectable")
	assert.True(t, cells["2026-09-02"].Flags.IsSelectable)
}
