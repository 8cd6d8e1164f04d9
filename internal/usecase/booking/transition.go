package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/SweepOpsFR/sweep-scheduler/internal/audit"
	"github.com/SweepOpsFR/sweep-scheduler/internal/calendar"
	"github.com/SweepOpsFR/sweep-scheduler/internal/config"
	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
	"github.com/SweepOpsFR/sweep-scheduler/internal/models"
	"github.com/SweepOpsFR/sweep-scheduler/internal/notify"
	"github.com/SweepOpsFR/sweep-scheduler/internal/timezone"
)

// TransitionBooking applies one edge of the lifecycle state machine on
// behalf of an operator. A same-status call is idempotent: it returns the
// unchanged booking and fires no notification.
type TransitionBooking struct {
	repo domain.Repository

	loc *time.Location
	now func() time.Time

	notifier *notify.Dispatcher
	audit    *audit.Dispatcher
}

func NewTransitionBooking(
	repo domain.Repository,
	cfg *config.Config,
	notifier *notify.Dispatcher,
	auditor *audit.Dispatcher,
) *TransitionBooking {
	loc := timezone.Location(cfg.Timezone)
	return &TransitionBooking{
		repo:     repo,
		loc:      loc,
		now:      func() time.Time { return time.Now().In(loc) },
		notifier: notifier,
		audit:    auditor,
	}
}

func (uc *TransitionBooking) Execute(
	ctx context.Context,
	operatorID *uint,
	bookingID uint,
	to domain.Status,
) (*models.Booking, error) {

	if !to.Valid() {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	if domain.Status(b.Status) == to {
		return b, nil
	}

	// Cancellation is only accepted before the appointment's civil day,
	// same rule as the citizen flow. Rejection stays open so stale pending
	// requests can be cleared.
	if to == domain.StatusCancelled && calendar.IsPast(b.Date, uc.now()) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	if err := domain.Transition(b, to, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		BookingID: b.ID,
		PublicRef: b.PublicRef,
		Kind:      "booking_" + string(to),
		Email:     b.ClientEmail,
		Phone:     b.ClientPhone,
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   operatorID,
		Action:   "booking_" + string(to),
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
