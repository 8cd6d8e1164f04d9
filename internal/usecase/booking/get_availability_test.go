package booking

import (
	"context"
	"testing"
	"time"

	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/dto"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
	"github.com/SweepOpsFR/sweep-scheduler/internal/models"
	"github.com/SweepOpsFR/sweep-scheduler/internal/zone"
)

func newAvailabilityUC(repo domain.Repository, blocks domain.BlockRepository, now time.Time) *GetAvailability {
	return &GetAvailability{
		repo:        repo,
		blocks:      blocks,
		zones:       zone.New([]string{"60"}),
		caps:        domain.CapacityConfig{Morning: 5, Afternoon: 5},
		workingDays: []int{1, 2, 3, 4, 5},
		loc:         time.UTC,
		now:         func() time.Time { return now },
	}
}

func dayByDate(t *testing.T, days []dto.DayAvailability, day int) dto.DayAvailability {
	t.Helper()
	for _, d := range days {
		if d.Date.Day() == day {
			return d
		}
	}
	t.Fatalf("day %d not in grid", day)
	return dto.DayAvailability{}
}

func marchQuery() domain.AvailabilityInput {
	return domain.AvailabilityInput{Year: 2026, Month: time.March, PostalCode: "60155"}
}

func TestAvailabilityZoneGate(t *testing.T) {
	uc := newAvailabilityUC(&mockBookingRepo{}, &mockBlockRepo{}, testNow)

	in := marchQuery()
	in.PostalCode = "75001"
	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeZoneRejected) {
		t.Fatalf("expected zone_rejected, got %v", err)
	}

	// the control panel passes no postal code and skips the gate
	in.PostalCode = ""
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("admin query must bypass the zone gate: %v", err)
	}
}

func TestAvailabilityWeekendsNeverAvailable(t *testing.T) {
	uc := newAvailabilityUC(&mockBookingRepo{}, &mockBlockRepo{}, testNow)

	days, err := uc.Execute(context.Background(), marchQuery())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// 2026-03-07 is a Saturday, 2026-03-08 a Sunday
	for _, dayNum := range []int{7, 8} {
		d := dayByDate(t, days, dayNum)
		if d.Morning.Available || d.Afternoon.Available {
			t.Errorf("day %d: weekend must never be available", dayNum)
		}
		if d.Selectable() {
			t.Errorf("day %d: weekend must not be selectable", dayNum)
		}
	}

	// the Monday after is open end to end
	d := dayByDate(t, days, 9)
	if !d.Morning.Available || !d.Afternoon.Available {
		t.Error("open weekday reported unavailable")
	}
	if d.Morning.Remaining != 5 || d.Morning.BookedCount != 0 {
		t.Errorf("empty slot: remaining=%d booked=%d", d.Morning.Remaining, d.Morning.BookedCount)
	}
}

func TestAvailabilityPastDays(t *testing.T) {
	uc := newAvailabilityUC(&mockBookingRepo{}, &mockBlockRepo{}, testNow)

	days, err := uc.Execute(context.Background(), marchQuery())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// testNow is March 2nd: the 1st is past, the 2nd is today and bookable.
	first := dayByDate(t, days, 1)
	if !first.IsPast || first.Morning.Available {
		t.Error("past day leaked as available")
	}

	today := dayByDate(t, days, 2)
	if !today.IsToday {
		t.Error("today flag missing")
	}
	if !today.Morning.Available {
		t.Error("today must remain bookable")
	}
}

func TestAvailabilityCountsAndCapacity(t *testing.T) {
	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	repo := &mockBookingRepo{
		countActiveBySlotFn: func(_ context.Context, _, _ time.Time) ([]domain.SlotCount, error) {
			return []domain.SlotCount{
				{Date: day, Slot: "morning", Total: 5},
				{Date: day, Slot: "afternoon", Total: 3},
			}, nil
		},
	}

	uc := newAvailabilityUC(repo, &mockBlockRepo{}, testNow)
	days, err := uc.Execute(context.Background(), marchQuery())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	d := dayByDate(t, days, 11)

	if d.Morning.Available {
		t.Error("full morning must not be available")
	}
	if d.Morning.Remaining != 0 || d.Morning.BookedCount != 5 {
		t.Errorf("morning: remaining=%d booked=%d", d.Morning.Remaining, d.Morning.BookedCount)
	}

	if !d.Afternoon.Available {
		t.Error("afternoon with room reported unavailable")
	}
	if d.Afternoon.Remaining != 2 || d.Afternoon.BookedCount != 3 {
		t.Errorf("afternoon: remaining=%d booked=%d", d.Afternoon.Remaining, d.Afternoon.BookedCount)
	}

	if !d.Selectable() {
		t.Error("day with one open slot must stay selectable")
	}
}

func TestAvailabilityDayBlockVetoesEmptySlots(t *testing.T) {
	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	blocks := &mockBlockRepo{
		listForPeriodFn: func(_ context.Context, _, _ time.Time) ([]models.Block, error) {
			return []models.Block{{Date: day, Slot: "", Reason: "congés"}}, nil
		},
	}

	uc := newAvailabilityUC(&mockBookingRepo{}, blocks, testNow)
	days, err := uc.Execute(context.Background(), marchQuery())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	d := dayByDate(t, days, 11)

	// zero bookings, a block alone removes availability
	if d.Morning.Available || d.Afternoon.Available {
		t.Error("whole-day block must veto both slots")
	}
	if !d.IsBlocked {
		t.Error("IsBlocked flag missing")
	}
	if d.Morning.BookedCount != 0 {
		t.Error("block must not be counted as a booking")
	}
}

func TestAvailabilitySlotBlock(t *testing.T) {
	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	blocks := &mockBlockRepo{
		listForPeriodFn: func(_ context.Context, _, _ time.Time) ([]models.Block, error) {
			return []models.Block{{Date: day, Slot: "morning"}}, nil
		},
	}

	uc := newAvailabilityUC(&mockBookingRepo{}, blocks, testNow)
	days, err := uc.Execute(context.Background(), marchQuery())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	d := dayByDate(t, days, 11)

	if d.Morning.Available {
		t.Error("blocked slot reported available")
	}
	if !d.Afternoon.Available {
		t.Error("sibling slot must keep its availability")
	}
	if d.IsBlocked {
		t.Error("slot block must not flag the whole day")
	}
	if d.BlockedSlot != "morning" {
		t.Errorf("BlockedSlot = %q, want morning", d.BlockedSlot)
	}
}

func TestAvailabilityBothSlotsBlocked(t *testing.T) {
	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	blocks := &mockBlockRepo{
		listForPeriodFn: func(_ context.Context, _, _ time.Time) ([]models.Block, error) {
			return []models.Block{
				{Date: day, Slot: "morning"},
				{Date: day, Slot: "afternoon"},
			}, nil
		},
	}

	uc := newAvailabilityUC(&mockBookingRepo{}, blocks, testNow)
	days, err := uc.Execute(context.Background(), marchQuery())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	d := dayByDate(t, days, 11)

	if d.Morning.Available || d.Afternoon.Available {
		t.Error("both slots blocked must leave nothing available")
	}
	if d.BlockedSlot != "both" {
		t.Errorf("BlockedSlot = %q, want both", d.BlockedSlot)
	}
	if d.IsBlocked {
		t.Error("two slot blocks are not a whole-day block")
	}
}

func TestAvailabilityUTCDateRowsLandOnTheRightDay(t *testing.T) {
	// gorm hands back date columns in UTC even when the grid is built in
	// another zone; rows must land by civil date, not by instant.
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	repo := &mockBookingRepo{
		countActiveBySlotFn: func(_ context.Context, _, _ time.Time) ([]domain.SlotCount, error) {
			return []domain.SlotCount{{Date: day, Slot: "morning", Total: 2}}, nil
		},
	}

	uc := newAvailabilityUC(repo, &mockBlockRepo{}, testNow.In(paris))
	uc.loc = paris

	days, err := uc.Execute(context.Background(), marchQuery())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if d := dayByDate(t, days, 11); d.Morning.BookedCount != 2 {
		t.Errorf("count landed wrong: booked=%d", d.Morning.BookedCount)
	}
}
