package booking

import "github.com/SweepOpsFR/sweep-scheduler/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses free their capacity unit and accept no further edges.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCancelled
}

// Active statuses occupy one capacity unit of their (date, slot).
func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Transition table
// ===============================

var transitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusConfirmed: true,
		StatusRejected:  true,
		StatusCancelled: true,
	},
	StatusConfirmed: {
		StatusCancelled: true,
	},
}

// CanTransition validates an edge of the lifecycle state machine. A
// same-status transition is allowed (idempotent no-op for the caller).
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	if transitions[from][to] {
		return nil
	}
	return httperr.ErrBusiness(httperr.CodeInvalidTransition)
}

func InitialStatus() Status {
	return StatusPending
}
