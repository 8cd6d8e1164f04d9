package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
	"github.com/SweepOpsFR/sweep-scheduler/internal/models"
)

var activeStatuses = []string{
	string(domain.StatusPending),
	string(domain.StatusConfirmed),
}

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Create / reserve
// --------------------------------------------------

// CreateWithCapacity runs the check-then-reserve as one transaction. The
// count-then-insert is serialized by a transaction-scoped advisory lock on
// the (date, slot) pair: a row lock on active bookings has nothing to grab
// when the slot is still empty, so concurrent first bookings would all
// count zero and overfill it.
func (r *BookingGormRepository) CreateWithCapacity(
	ctx context.Context,
	b *models.Booking,
	capacity int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext(? || '/' || ?))",
			b.Date.Format("2006-01-02"), b.Slot,
		).Error; err != nil {
			return err
		}

		var occupied int64
		if err := tx.
			Model(&models.Booking{}).
			Where(
				"date = ? AND slot = ? AND status IN ?",
				b.Date, b.Slot, activeStatuses,
			).
			Count(&occupied).Error; err != nil {
			return err
		}

		if occupied >= int64(capacity) {
			return httperr.ErrBusiness(httperr.CodeCapacityExceeded)
		}

		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// Lookup / state change
// --------------------------------------------------

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Technician").
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetByPublicRef(
	ctx context.Context,
	ref string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("public_ref = ?", ref).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) Update(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) CountActiveBySlot(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]domain.SlotCount, error) {

	var rows []domain.SlotCount
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("date, slot, COUNT(*) AS total").
		Where(
			"date >= ? AND date < ? AND status IN ?",
			from, to, activeStatuses,
		).
		Group("date, slot").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// --------------------------------------------------
// Lists
// --------------------------------------------------

func (r *BookingGormRepository) ListForPeriod(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Technician").
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC, slot ASC, id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListConfirmedForTechnician(
	ctx context.Context,
	technicianID uint,
	date time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"technician_id = ? AND date = ? AND status = ?",
			technicianID, date, string(domain.StatusConfirmed),
		).
		Order("slot ASC, id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
