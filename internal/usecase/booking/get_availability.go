package booking

import (
	"context"
	"time"

	"github.com/SweepOpsFR/sweep-scheduler/internal/calendar"
	"github.com/SweepOpsFR/sweep-scheduler/internal/config"
	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/dto"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
	"github.com/SweepOpsFR/sweep-scheduler/internal/timezone"
	"github.com/SweepOpsFR/sweep-scheduler/internal/zone"
)

// GetAvailability answers "which days/slots of this month are bookable".
// Pure query over bookings + blocks, recomputed on every call; no caching,
// the subsequent create re-validates anyway.
type GetAvailability struct {
	repo   domain.Repository
	blocks domain.BlockRepository
	zones  *zone.Service

	caps        domain.CapacityConfig
	workingDays []int
	loc         *time.Location
	now         func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	blocks domain.BlockRepository,
	zones *zone.Service,
	cfg *config.Config,
) *GetAvailability {
	loc := timezone.Location(cfg.Timezone)
	return &GetAvailability{
		repo:   repo,
		blocks: blocks,
		zones:  zones,
		caps: domain.CapacityConfig{
			Morning:   cfg.MorningCapacity,
			Afternoon: cfg.AfternoonCapacity,
		},
		workingDays: cfg.WorkingDays,
		loc:         loc,
		now:         func() time.Time { return time.Now().In(loc) },
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]dto.DayAvailability, error) {

	// Zone gate: only for the public flow (admin queries pass no code).
	if in.PostalCode != "" && !uc.zones.IsServed(in.PostalCode) {
		return nil, httperr.ErrBusiness(httperr.CodeZoneRejected)
	}

	now := uc.now()

	from := time.Date(in.Year, in.Month, 1, 0, 0, 0, 0, uc.loc)
	to := from.AddDate(0, 1, 0)

	counts, err := uc.repo.CountActiveBySlot(ctx, from, to)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]int, len(counts))
	for _, row := range counts {
		booked[slotKey(row.Date, domain.Slot(row.Slot))] = row.Total
	}

	blocks, err := uc.blocks.ListForPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	dayBlocked := make(map[string]bool)
	slotBlocked := make(map[string]bool)
	for _, bl := range blocks {
		if bl.Slot == "" {
			dayBlocked[dayKey(bl.Date)] = true
		} else {
			slotBlocked[slotKey(bl.Date, domain.Slot(bl.Slot))] = true
		}
	}

	days := calendar.MonthDays(in.Year, in.Month, now, uc.loc)

	out := make([]dto.DayAvailability, 0, len(days))
	for _, day := range days {
		d := dto.DayAvailability{
			Date:      day.Date,
			Weekday:   day.Weekday,
			IsPast:    day.IsPast,
			IsToday:   day.IsToday,
			IsBlocked: dayBlocked[dayKey(day.Date)],
		}

		d.Morning = uc.slotAvailability(day, domain.SlotMorning, booked, dayBlocked, slotBlocked)
		d.Afternoon = uc.slotAvailability(day, domain.SlotAfternoon, booked, dayBlocked, slotBlocked)

		morningBlocked := slotBlocked[slotKey(day.Date, domain.SlotMorning)]
		afternoonBlocked := slotBlocked[slotKey(day.Date, domain.SlotAfternoon)]
		switch {
		case morningBlocked && afternoonBlocked:
			d.BlockedSlot = "both"
		case morningBlocked:
			d.BlockedSlot = string(domain.SlotMorning)
		case afternoonBlocked:
			d.BlockedSlot = string(domain.SlotAfternoon)
		}

		out = append(out, d)
	}

	return out, nil
}

func (uc *GetAvailability) slotAvailability(
	day calendar.Day,
	slot domain.Slot,
	booked map[string]int,
	dayBlocked map[string]bool,
	slotBlocked map[string]bool,
) dto.SlotAvailability {

	count := booked[slotKey(day.Date, slot)]

	remaining := uc.caps.For(slot) - count
	if remaining < 0 {
		remaining = 0
	}

	available := !day.IsPast &&
		uc.isWorkingDay(day.Weekday) &&
		!dayBlocked[dayKey(day.Date)] &&
		!slotBlocked[slotKey(day.Date, slot)] &&
		remaining > 0

	return dto.SlotAvailability{
		Available:   available,
		Remaining:   remaining,
		BookedCount: count,
	}
}

func (uc *GetAvailability) isWorkingDay(weekday int) bool {
	for _, d := range uc.workingDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// Map keys are civil dates: the DB hands back date columns in UTC while the
// grid is generated in the business timezone, so never key on time.Time.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func slotKey(t time.Time, slot domain.Slot) string {
	return t.Format("2006-01-02") + "/" + string(slot)
}
