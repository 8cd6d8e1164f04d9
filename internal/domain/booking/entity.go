package booking

import (
	"time"

	"github.com/SweepOpsFR/sweep-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves a booking to a new status, stamping the matching
// timestamp. Returns the booking unchanged when to equals the current
// status (idempotent), invalid_transition for any edge outside the table.
func Transition(b *models.Booking, to Status, now time.Time) error {
	from := Status(b.Status)

	if err := CanTransition(from, to); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	b.Status = string(to)
	switch to {
	case StatusConfirmed:
		b.ConfirmedAt = &now
	case StatusRejected:
		b.RejectedAt = &now
	case StatusCancelled:
		b.CancelledAt = &now
	}
	return nil
}
