package booking

import (
	"testing"
	"time"

	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
	"github.com/SweepOpsFR/sweep-scheduler/internal/models"
)

func TestCanTransitionTable(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusRejected},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCancelled},
	}
	for _, tc := range allowed {
		if err := CanTransition(tc.from, tc.to); err != nil {
			t.Errorf("%s -> %s: expected allowed, got %v", tc.from, tc.to, err)
		}
	}

	forbidden := []struct{ from, to Status }{
		{StatusConfirmed, StatusPending},
		{StatusConfirmed, StatusRejected},
		{StatusRejected, StatusConfirmed},
		{StatusRejected, StatusPending},
		{StatusRejected, StatusCancelled},
		{StatusCancelled, StatusConfirmed},
		{StatusCancelled, StatusPending},
		{StatusCancelled, StatusRejected},
	}
	for _, tc := range forbidden {
		err := CanTransition(tc.from, tc.to)
		if !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
			t.Errorf("%s -> %s: expected invalid_transition, got %v", tc.from, tc.to, err)
		}
	}
}

func TestCanTransitionSameStatusIsIdempotent(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusRejected, StatusCancelled} {
		if err := CanTransition(s, s); err != nil {
			t.Errorf("%s -> %s: same-status must be a no-op, got %v", s, s, err)
		}
	}
}

func TestStatusClassification(t *testing.T) {
	if !StatusPending.Active() || !StatusConfirmed.Active() {
		t.Error("pending and confirmed must occupy capacity")
	}
	if StatusRejected.Active() || StatusCancelled.Active() {
		t.Error("terminal statuses must not occupy capacity")
	}
	if !StatusRejected.Terminal() || !StatusCancelled.Terminal() {
		t.Error("rejected and cancelled are terminal")
	}
	if StatusPending.Terminal() || StatusConfirmed.Terminal() {
		t.Error("pending and confirmed are not terminal")
	}
	if Status("deleted").Valid() {
		t.Error("unknown status must not validate")
	}
}

func TestTransitionStampsTimestamps(t *testing.T) {
	now := time.Date(2026, 4, 2, 11, 0, 0, 0, time.UTC)

	b := &models.Booking{Status: string(StatusPending)}
	if err := Transition(b, StatusConfirmed, now); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if b.Status != string(StatusConfirmed) {
		t.Fatalf("status = %s, want confirmed", b.Status)
	}
	if b.ConfirmedAt == nil || !b.ConfirmedAt.Equal(now) {
		t.Error("ConfirmedAt not stamped")
	}

	if err := Transition(b, StatusCancelled, now); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if b.CancelledAt == nil {
		t.Error("CancelledAt not stamped")
	}

	b2 := &models.Booking{Status: string(StatusPending)}
	if err := Transition(b2, StatusRejected, now); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if b2.RejectedAt == nil {
		t.Error("RejectedAt not stamped")
	}
}

func TestTransitionSameStatusLeavesBookingUntouched(t *testing.T) {
	now := time.Now()
	b := &models.Booking{Status: string(StatusConfirmed)}

	if err := Transition(b, StatusConfirmed, now); err != nil {
		t.Fatalf("same-status transition: %v", err)
	}
	if b.ConfirmedAt != nil {
		t.Error("idempotent call must not re-stamp ConfirmedAt")
	}
}

func TestTransitionRejectsInvalidEdge(t *testing.T) {
	b := &models.Booking{Status: string(StatusRejected)}
	err := Transition(b, StatusConfirmed, time.Now())
	if !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
		t.Fatalf("expected invalid_transition, got %v", err)
	}
	if b.Status != string(StatusRejected) {
		t.Errorf("failed transition mutated status to %s", b.Status)
	}
}

func TestSlotAndScope(t *testing.T) {
	if !SlotMorning.Valid() || !SlotAfternoon.Valid() || Slot("evening").Valid() {
		t.Error("slot validation broken")
	}
	if SlotMorning.Window() != "08:00 - 12:30" || SlotAfternoon.Window() != "13:30 - 18:00" {
		t.Error("slot windows changed")
	}

	if ScopeDay.SlotValue() != "" {
		t.Error("whole-day scope must map to the empty slot value")
	}
	if ScopeMorning.SlotValue() != "morning" || ScopeAfternoon.SlotValue() != "afternoon" {
		t.Error("slot scopes must map to their slot value")
	}
	if BlockScope("week").Valid() {
		t.Error("unknown scope must not validate")
	}
}
