package booking

import (
	"context"
	"fmt"
	"time"

	blockRepo "bandroom/database/repository/block"
	bookingRepo "bandroom/database/repository/booking"
	"bandroom/models"
	"bandroom/services/notification"
	"bandroom/services/scheduling"
)

// In-memory stores for lifecycle tests. The guard contract matches the
// real repositories: the guard runs first and an error aborts the write.

type memBookingRepo struct {
	bookings []models.Booking
	nextID   int
}

func (m *memBookingRepo) CreateGuarded(ctx context.Context, b *models.Booking, guard func(ctx context.Context) error) error {
	if err := guard(ctx); err != nil {
		return err
	}
	m.nextID++
	if b.ID == "" {
		b.ID = fmt.Sprintf("bk-%d", m.nextID)
	}
	if b.Status == "" {
		b.Status = models.BookingStatusPending
	}
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *memBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			b := m.bookings[i]
			return &b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (m *memBookingRepo) GetActiveByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.Date == date && b.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookingRepo) GetActiveInRange(ctx context.Context, fromDate, toDate string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.Date >= fromDate && b.Date <= toDate && b.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookingRepo) List(ctx context.Context, f bookingRepo.Filter) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.Date != "" && b.Date != f.Date {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (m *memBookingRepo) UpdateStatusFrom(ctx context.Context, id string, from []string, to string, reason string) (bool, error) {
	for i := range m.bookings {
		if m.bookings[i].ID != id {
			continue
		}
		for _, f := range from {
			if m.bookings[i].Status == f {
				m.bookings[i].Status = to
				m.bookings[i].UpdatedAt = time.Now()
				if to == models.BookingStatusCancelled {
					m.bookings[i].CancelReason = reason
					now := time.Now()
					m.bookings[i].CancelledAt = &now
				}
				return true, nil
			}
		}
		return false, nil
	}
	return false, nil
}

func (m *memBookingRepo) ApproveGuarded(ctx context.Context, id string, guard func(ctx context.Context) error) (bool, error) {
	if err := guard(ctx); err != nil {
		return false, err
	}
	return m.UpdateStatusFrom(ctx, id, []string{models.BookingStatusPending}, models.BookingStatusApproved, "")
}

func (m *memBookingRepo) EnsureIndexes() error { return nil }

type memBlockRepo struct {
	blocks []models.AvailabilityBlock
}

func (m *memBlockRepo) Create(ctx context.Context, b *models.AvailabilityBlock) error {
	m.blocks = append(m.blocks, *b)
	return nil
}

func (m *memBlockRepo) GetByID(ctx context.Context, id string) (*models.AvailabilityBlock, error) {
	for i := range m.blocks {
		if m.blocks[i].ID == id {
			b := m.blocks[i]
			return &b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (m *memBlockRepo) Update(ctx context.Context, b *models.AvailabilityBlock) error {
	for i := range m.blocks {
		if m.blocks[i].ID == b.ID {
			m.blocks[i] = *b
		}
	}
	return nil
}

func (m *memBlockRepo) DeleteByID(ctx context.Context, id string) error {
	for i := range m.blocks {
		if m.blocks[i].ID == id {
			m.blocks = append(m.blocks[:i], m.blocks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memBlockRepo) ListAll(ctx context.Context) ([]models.AvailabilityBlock, error) {
	return m.blocks, nil
}

func (m *memBlockRepo) ListCovering(ctx context.Context, date string) ([]models.AvailabilityBlock, error) {
	var out []models.AvailabilityBlock
	for _, b := range m.blocks {
		if b.ContainsDate(date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBlockRepo) ListIntersecting(ctx context.Context, fromDate, toDate string) ([]models.AvailabilityBlock, error) {
	var out []models.AvailabilityBlock
	for _, b := range m.blocks {
		if b.StartDate <= toDate && b.EndDate >= fromDate {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBlockRepo) EnsureIndexes() error { return nil }

var _ bookingRepo.BookingRepository = (*memBookingRepo)(nil)
var _ blockRepo.BlockRepository = (*memBlockRepo)(nil)

var frozenNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func testPolicy() scheduling.Policy {
	return scheduling.Policy{
		OpenMinutes:      540,  // 09:00
		CloseMinutes:     1410, // 23:30
		StepMinutes:      30,
		MinDurationHours: 1,
		MaxDurationHours: 4,
		FullDayHours:     13,
		Location:         time.UTC,
	}
}

// newTestService wires a lifecycle service over in-memory stores, a
// frozen clock, and a real artifact generator with delivery disabled.
func newTestService(bookings *memBookingRepo, blocks *memBlockRepo) *DefaultBookingService {
	gen := &notification.ArtifactGenerator{
		Domain:         "bandroom.test",
		OrganizerEmail: "desk@bandroom.test",
		OrganizerName:  "Front Desk",
		Location:       time.UTC,
		Now:            func() time.Time { return frozenNow },
	}
	return &DefaultBookingService{
		Repo:      bookings,
		Blocks:    blocks,
		Conflicts: &scheduling.ConflictDetector{Repo: bookings},
		Policy:    testPolicy(),
		Notifier:  &notification.DefaultNotificationService{Bookings: bookings, Generator: gen},
		Now:       func() time.Time { return frozenNow },
	}
}

func bookingFilter(status, date string) bookingRepo.Filter {
	return bookingRepo.Filter{Status: status, Date: date}
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		Date:          "2026-09-10",
		StartTime:     "14:00",
		DurationHours: 2,
		BandName:      "The Testers",
		Email:         "band@example.com",
		MembersCount:  4,
	}
}
