package booking

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
	"github.com/SweepOpsFR/sweep-scheduler/internal/models"
)

// ======================================================
// FUNC-FIELD MOCKS
// ======================================================

type mockBookingRepo struct {
	createWithCapacityFn func(ctx context.Context, b *models.Booking, capacity int) error
	getByIDFn            func(ctx context.Context, id uint) (*models.Booking, error)
	getByPublicRefFn     func(ctx context.Context, ref string) (*models.Booking, error)
	updateFn             func(ctx context.Context, b *models.Booking) error
	countActiveBySlotFn  func(ctx context.Context, from, to time.Time) ([]domain.SlotCount, error)
	listForPeriodFn      func(ctx context.Context, from, to time.Time) ([]models.Booking, error)
	listConfirmedFn      func(ctx context.Context, technicianID uint, date time.Time) ([]models.Booking, error)
}

var _ domain.Repository = (*mockBookingRepo)(nil)

func (m *mockBookingRepo) CreateWithCapacity(ctx context.Context, b *models.Booking, capacity int) error {
	if m.createWithCapacityFn == nil {
		return nil
	}
	return m.createWithCapacityFn(ctx, b, capacity)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	if m.getByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.getByIDFn(ctx, id)
}

func (m *mockBookingRepo) GetByPublicRef(ctx context.Context, ref string) (*models.Booking, error) {
	if m.getByPublicRefFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.getByPublicRefFn(ctx, ref)
}

func (m *mockBookingRepo) Update(ctx context.Context, b *models.Booking) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, b)
}

func (m *mockBookingRepo) CountActiveBySlot(ctx context.Context, from, to time.Time) ([]domain.SlotCount, error) {
	if m.countActiveBySlotFn == nil {
		return nil, nil
	}
	return m.countActiveBySlotFn(ctx, from, to)
}

func (m *mockBookingRepo) ListForPeriod(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	if m.listForPeriodFn == nil {
		return nil, nil
	}
	return m.listForPeriodFn(ctx, from, to)
}

func (m *mockBookingRepo) ListConfirmedForTechnician(ctx context.Context, technicianID uint, date time.Time) ([]models.Booking, error) {
	if m.listConfirmedFn == nil {
		return nil, nil
	}
	return m.listConfirmedFn(ctx, technicianID, date)
}

type mockBlockRepo struct {
	listForPeriodFn   func(ctx context.Context, from, to time.Time) ([]models.Block, error)
	getDayBlockFn     func(ctx context.Context, date time.Time) (*models.Block, error)
	getSlotBlockFn    func(ctx context.Context, date time.Time, slot domain.Slot) (*models.Block, error)
	setDayBlockFn     func(ctx context.Context, block *models.Block) error
	setSlotBlockFn    func(ctx context.Context, block *models.Block) error
	deleteForDateFn   func(ctx context.Context, date time.Time) error
	deleteSlotBlockFn func(ctx context.Context, date time.Time, slot domain.Slot) error
}

var _ domain.BlockRepository = (*mockBlockRepo)(nil)

func (m *mockBlockRepo) ListForPeriod(ctx context.Context, from, to time.Time) ([]models.Block, error) {
	if m.listForPeriodFn == nil {
		return nil, nil
	}
	return m.listForPeriodFn(ctx, from, to)
}

func (m *mockBlockRepo) GetDayBlock(ctx context.Context, date time.Time) (*models.Block, error) {
	if m.getDayBlockFn == nil {
		return nil, nil
	}
	return m.getDayBlockFn(ctx, date)
}

func (m *mockBlockRepo) GetSlotBlock(ctx context.Context, date time.Time, slot domain.Slot) (*models.Block, error) {
	if m.getSlotBlockFn == nil {
		return nil, nil
	}
	return m.getSlotBlockFn(ctx, date, slot)
}

func (m *mockBlockRepo) SetDayBlock(ctx context.Context, block *models.Block) error {
	if m.setDayBlockFn == nil {
		return nil
	}
	return m.setDayBlockFn(ctx, block)
}

func (m *mockBlockRepo) SetSlotBlock(ctx context.Context, block *models.Block) error {
	if m.setSlotBlockFn == nil {
		return nil
	}
	return m.setSlotBlockFn(ctx, block)
}

func (m *mockBlockRepo) DeleteForDate(ctx context.Context, date time.Time) error {
	if m.deleteForDateFn == nil {
		return nil
	}
	return m.deleteForDateFn(ctx, date)
}

func (m *mockBlockRepo) DeleteSlotBlock(ctx context.Context, date time.Time, slot domain.Slot) error {
	if m.deleteSlotBlockFn == nil {
		return nil
	}
	return m.deleteSlotBlockFn(ctx, date, slot)
}

type mockTechnicianRepo struct {
	getByIDFn func(ctx context.Context, id uint) (*models.Technician, error)
}

var _ domain.TechnicianRepository = (*mockTechnicianRepo)(nil)

func (m *mockTechnicianRepo) GetByID(ctx context.Context, id uint) (*models.Technician, error) {
	if m.getByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.getByIDFn(ctx, id)
}

func (m *mockTechnicianRepo) List(ctx context.Context) ([]models.Technician, error) {
	return nil, nil
}

func (m *mockTechnicianRepo) Create(ctx context.Context, t *models.Technician) error {
	return nil
}

func (m *mockTechnicianRepo) Update(ctx context.Context, t *models.Technician) error {
	return nil
}

// ======================================================
// IN-MEMORY STORE (capacity semantics end to end)
// ======================================================

// fakeBookingStore mirrors the serialized check-then-reserve of the real
// repository: a booking lands only while the active count of its
// (date, slot) is below capacity.
type fakeBookingStore struct {
	mu       sync.Mutex
	nextID   uint
	bookings []*models.Booking
}

var _ domain.Repository = (*fakeBookingStore)(nil)

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{nextID: 1}
}

func (s *fakeBookingStore) activeCount(date time.Time, slot string) int {
	n := 0
	for _, b := range s.bookings {
		if domain.Status(b.Status).Active() &&
			b.Date.Format("2006-01-02") == date.Format("2006-01-02") &&
			b.Slot == slot {
			n++
		}
	}
	return n
}

func (s *fakeBookingStore) CreateWithCapacity(_ context.Context, b *models.Booking, capacity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeCount(b.Date, b.Slot) >= capacity {
		return httperr.ErrBusiness(httperr.CodeCapacityExceeded)
	}

	b.ID = s.nextID
	s.nextID++
	s.bookings = append(s.bookings, b)
	return nil
}

func (s *fakeBookingStore) GetByID(_ context.Context, id uint) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeBookingStore) GetByPublicRef(_ context.Context, ref string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.PublicRef == ref {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeBookingStore) Update(_ context.Context, b *models.Booking) error {
	return nil // bookings are shared pointers, mutation is the update
}

func (s *fakeBookingStore) CountActiveBySlot(_ context.Context, from, to time.Time) ([]domain.SlotCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := map[string]*domain.SlotCount{}
	for _, b := range s.bookings {
		if !domain.Status(b.Status).Active() || b.Date.Before(from) || !b.Date.Before(to) {
			continue
		}
		key := b.Date.Format("2006-01-02") + "/" + b.Slot
		if counts[key] == nil {
			counts[key] = &domain.SlotCount{Date: b.Date, Slot: b.Slot}
		}
		counts[key].Total++
	}

	out := make([]domain.SlotCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, *c)
	}
	return out, nil
}

func (s *fakeBookingStore) ListForPeriod(_ context.Context, from, to time.Time) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Booking
	for _, b := range s.bookings {
		if !b.Date.Before(from) && b.Date.Before(to) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *fakeBookingStore) ListConfirmedForTechnician(_ context.Context, technicianID uint, date time.Time) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Booking
	for _, b := range s.bookings {
		if domain.Status(b.Status) == domain.StatusConfirmed &&
			b.TechnicianID != nil && *b.TechnicianID == technicianID &&
			calendarSameDay(b.Date, date) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func calendarSameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}
