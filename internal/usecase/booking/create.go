package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SweepOpsFR/sweep-scheduler/internal/audit"
	"github.com/SweepOpsFR/sweep-scheduler/internal/calendar"
	"github.com/SweepOpsFR/sweep-scheduler/internal/config"
	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
	"github.com/SweepOpsFR/sweep-scheduler/internal/models"
	"github.com/SweepOpsFR/sweep-scheduler/internal/notify"
	"github.com/SweepOpsFR/sweep-scheduler/internal/timezone"
	"github.com/SweepOpsFR/sweep-scheduler/internal/zone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Date string // YYYY-MM-DD
	Slot string

	ServiceType   string
	EquipmentType string
	BrandModel    string
	ExhaustType   string

	ClientName  string
	ClientPhone string
	ClientEmail string

	Address    string
	PostalCode string
	City       string

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	blocks domain.BlockRepository
	zones  *zone.Service

	caps            domain.CapacityConfig
	workingDays     []int
	minAdvanceHours int
	loc             *time.Location
	now             func() time.Time

	notifier *notify.Dispatcher
	audit    *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	blocks domain.BlockRepository,
	zones *zone.Service,
	cfg *config.Config,
	notifier *notify.Dispatcher,
	auditor *audit.Dispatcher,
) *CreateBooking {
	loc := timezone.Location(cfg.Timezone)
	return &CreateBooking{
		repo:   repo,
		blocks: blocks,
		zones:  zones,
		caps: domain.CapacityConfig{
			Morning:   cfg.MorningCapacity,
			Afternoon: cfg.AfternoonCapacity,
		},
		workingDays:     cfg.WorkingDays,
		minAdvanceHours: cfg.MinAdvanceHours,
		loc:             loc,
		now:             func() time.Time { return time.Now().In(loc) },
		notifier:        notifier,
		audit:           auditor,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Slot + zone
	// --------------------------------------------------
	slot := domain.Slot(in.Slot)
	if !slot.Valid() {
		return nil, httperr.ErrBusiness("invalid_slot")
	}

	if !uc.zones.IsServed(in.PostalCode) {
		return nil, httperr.ErrBusiness(httperr.CodeZoneRejected)
	}

	// --------------------------------------------------
	// 2. Date in the business timezone
	// --------------------------------------------------
	date, err := time.ParseInLocation("2006-01-02", in.Date, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	now := uc.now()
	if calendar.IsPast(date, now) {
		return nil, httperr.ErrBusiness(httperr.CodePastDate)
	}

	// --------------------------------------------------
	// 3. Minimum advance: measured against the slot's service window
	// start, not the civil day.
	// --------------------------------------------------
	if uc.minAdvanceHours > 0 {
		slotStart := slotStartTime(date, slot)
		if slotStart.Before(now.Add(time.Duration(uc.minAdvanceHours) * time.Hour)) {
			return nil, httperr.ErrBusiness(httperr.CodeTooSoon)
		}
	}

	// --------------------------------------------------
	// 4. Working day + operator blocks. Both make the slot unavailable:
	// same recoverable class as a full slot for the citizen.
	// --------------------------------------------------
	if !uc.isWorkingDay(int(date.Weekday())) {
		return nil, httperr.ErrBusiness(httperr.CodeCapacityExceeded)
	}

	if dayBlock, err := uc.blocks.GetDayBlock(ctx, date); err != nil {
		return nil, err
	} else if dayBlock != nil {
		return nil, httperr.ErrBusiness(httperr.CodeCapacityExceeded)
	}

	if slotBlock, err := uc.blocks.GetSlotBlock(ctx, date, slot); err != nil {
		return nil, err
	} else if slotBlock != nil {
		return nil, httperr.ErrBusiness(httperr.CodeCapacityExceeded)
	}

	// --------------------------------------------------
	// 5. Check-then-reserve (single serialized transaction)
	// --------------------------------------------------
	b := &models.Booking{
		PublicRef: uuid.NewString(),
		Date:      date,
		Slot:      string(slot),
		Status:    string(domain.InitialStatus()),

		ServiceType:   in.ServiceType,
		EquipmentType: in.EquipmentType,
		BrandModel:    in.BrandModel,
		ExhaustType:   in.ExhaustType,

		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		ClientEmail: in.ClientEmail,

		Address:    in.Address,
		PostalCode: in.PostalCode,
		City:       in.City,

		Notes: in.Notes,
	}

	if err := uc.repo.CreateWithCapacity(ctx, b, uc.caps.For(slot)); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Side effects (never part of the transaction)
	// --------------------------------------------------
	uc.notifier.Dispatch(notify.Event{
		BookingID: b.ID,
		PublicRef: b.PublicRef,
		Kind:      "booking_received",
		Email:     b.ClientEmail,
		Phone:     b.ClientPhone,
	})

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

func (uc *CreateBooking) isWorkingDay(weekday int) bool {
	for _, d := range uc.workingDays {
		if d == weekday {
			return true
		}
	}
	return false
}

func slotStartTime(date time.Time, slot domain.Slot) time.Time {
	h, m := 8, 0
	if slot == domain.SlotAfternoon {
		h, m = 13, 30
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		h, m, 0, 0,
		date.Location(),
	)
}
