package scheduling

import (
	"context"
	"time"

	bookingRepo "bandroom/database/repository/booking"
	"bandroom/models"

	"github.com/google/uuid"
)

// In-memory repositories for engine tests.

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) CreateGuarded(ctx context.Context, b *models.Booking, guard func(ctx context.Context) error) error {
	if err := guard(ctx); err != nil {
		return err
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Status == "" {
		b.Status = models.BookingStatusPending
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (f *fakeBookingRepo) GetActiveByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date && b.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetActiveInRange(ctx context.Context, fromDate, toDate string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date >= fromDate && b.Date <= toDate && b.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) List(ctx context.Context, flt bookingRepo.Filter) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if flt.Status != "" && b.Status != flt.Status {
			continue
		}
		if flt.Date != "" && b.Date != flt.Date {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatusFrom(ctx context.Context, id string, from []string, to string, reason string) (bool, error) {
	for i := range f.bookings {
		if f.bookings[i].ID != id {
			continue
		}
		for _, s := range from {
			if f.bookings[i].Status == s {
				f.bookings[i].Status = to
				if to == models.BookingStatusCancelled {
					f.bookings[i].CancelReason = reason
					now := time.Now()
					f.bookings[i].CancelledAt = &now
				}
				return true, nil
			}
		}
		return false, nil
	}
	return false, nil
}

func (f *fakeBookingRepo) ApproveGuarded(ctx context.Context, id string, guard func(ctx context.Context) error) (bool, error) {
	if err := guard(ctx); err != nil {
		return false, err
	}
	return f.UpdateStatusFrom(ctx, id, []string{models.BookingStatusPending}, models.BookingStatusApproved, "")
}

func (f *fakeBookingRepo) EnsureIndexes() error { return nil }

type fakeBlockRepo struct {
	blocks []models.AvailabilityBlock
}

func (f *fakeBlockRepo) Create(ctx context.Context, b *models.AvailabilityBlock) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	f.blocks = append(f.blocks, *b)
	return nil
}

func (f *fakeBlockRepo) GetByID(ctx context.Context, id string) (*models.AvailabilityBlock, error) {
	for i := range f.blocks {
		if f.blocks[i].ID == id {
			b := f.blocks[i]
			return &b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (f *fakeBlockRepo) Update(ctx context.Context, b *models.AvailabilityBlock) error {
	for i := range f.blocks {
		if f.blocks[i].ID == b.ID {
			f.blocks[i] = *b
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}

func (f *fakeBlockRepo) DeleteByID(ctx context.Context, id string) error {
	for i := range f.blocks {
		if f.blocks[i].ID == id {
			f.blocks = append(f.blocks[:i], f.blocks[i+1:]...)
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}

func (f *fakeBlockRepo) ListAll(ctx context.Context) ([]models.AvailabilityBlock, error) {
	return f.blocks, nil
}

func (f *fakeBlockRepo) ListCovering(ctx context.Context, date string) ([]models.AvailabilityBlock, error) {
	var out []models.AvailabilityBlock
	for _, b := range f.blocks {
		if b.ContainsDate(date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBlockRepo) ListIntersecting(ctx context.Context, fromDate, toDate string) ([]models.AvailabilityBlock, error) {
	var out []models.AvailabilityBlock
	for _, b := range f.blocks {
		if b.StartDate <= toDate && b.EndDate >= fromDate {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBlockRepo) EnsureIndexes() error { return nil }

// newTestEngine wires an engine over in-memory state with a frozen
// clock.
func newTestEngine(bookings *fakeBookingRepo, blocks *fakeBlockRepo, now time.Time) *Engine {
	return &Engine{
		Policy:    testPolicy(),
		Conflicts: &ConflictDetector{Repo: bookings},
		Bookings:  bookings,
		Blocks:    blocks,
		Now:       func() time.Time { return now },
	}
}
