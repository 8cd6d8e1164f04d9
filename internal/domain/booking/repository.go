package booking

import (
	"context"
	"time"

	"github.com/SweepOpsFR/sweep-scheduler/internal/models"
)

type Repository interface {
	// -------- Booking (create / reserve) --------

	// CreateWithCapacity inserts the booking only if the active count for
	// its (date, slot) is below capacity, as one serialized transaction.
	// Returns capacity_exceeded when the slot is full at commit time.
	CreateWithCapacity(
		ctx context.Context,
		b *models.Booking,
		capacity int,
	) error

	// -------- Booking (lookup / state change) --------
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	GetByPublicRef(
		ctx context.Context,
		ref string,
	) (*models.Booking, error)

	Update(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Availability --------

	// CountActiveBySlot aggregates pending+confirmed bookings per
	// (date, slot) over [from, to).
	CountActiveBySlot(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]SlotCount, error)

	// -------- Lists --------
	ListForPeriod(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)

	ListConfirmedForTechnician(
		ctx context.Context,
		technicianID uint,
		date time.Time,
	) ([]models.Booking, error)
}

type BlockRepository interface {
	// ListForPeriod returns all blocks with Date in [from, to).
	ListForPeriod(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.Block, error)

	GetDayBlock(
		ctx context.Context,
		date time.Time,
	) (*models.Block, error)

	GetSlotBlock(
		ctx context.Context,
		date time.Time,
		slot Slot,
	) (*models.Block, error)

	// SetDayBlock removes any slot blocks for the date and writes the
	// whole-day block, atomically. Re-blocking updates the reason.
	SetDayBlock(
		ctx context.Context,
		block *models.Block,
	) error

	// SetSlotBlock writes a slot block; re-blocking updates the reason.
	SetSlotBlock(
		ctx context.Context,
		block *models.Block,
	) error

	// DeleteForDate removes every block for the date (whole-day unblock).
	DeleteForDate(
		ctx context.Context,
		date time.Time,
	) error

	DeleteSlotBlock(
		ctx context.Context,
		date time.Time,
		slot Slot,
	) error
}

type TechnicianRepository interface {
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Technician, error)

	List(
		ctx context.Context,
	) ([]models.Technician, error)

	Create(
		ctx context.Context,
		t *models.Technician,
	) error

	Update(
		ctx context.Context,
		t *models.Technician,
	) error
}
