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

// CancelPublicBooking is the citizen-side cancellation, keyed by the public
// reference instead of an operator session. Cancellation is only accepted
// before the appointment's civil day.
type CancelPublicBooking struct {
	repo domain.Repository

	loc *time.Location
	now func() time.Time

	notifier *notify.Dispatcher
	audit    *audit.Dispatcher
}

func NewCancelPublicBooking(
	repo domain.Repository,
	cfg *config.Config,
	notifier *notify.Dispatcher,
	auditor *audit.Dispatcher,
) *CancelPublicBooking {
	loc := timezone.Location(cfg.Timezone)
	return &CancelPublicBooking{
		repo:     repo,
		loc:      loc,
		now:      func() time.Time { return time.Now().In(loc) },
		notifier: notifier,
		audit:    auditor,
	}
}

func (uc *CancelPublicBooking) Execute(
	ctx context.Context,
	publicRef string,
) (*models.Booking, error) {

	b, err := uc.repo.GetByPublicRef(ctx, publicRef)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	now := uc.now()

	if domain.Status(b.Status) == domain.StatusCancelled {
		return b, nil
	}

	if calendar.IsPast(b.Date, now) {
		// appointment day already past
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	if err := domain.Transition(b, domain.StatusCancelled, now); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		BookingID: b.ID,
		PublicRef: b.PublicRef,
		Kind:      "booking_cancelled",
		Email:     b.ClientEmail,
		Phone:     b.ClientPhone,
	})

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_cancelled_by_client",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
