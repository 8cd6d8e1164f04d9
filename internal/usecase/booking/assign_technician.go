package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/SweepOpsFR/sweep-scheduler/internal/audit"
	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
	"github.com/SweepOpsFR/sweep-scheduler/internal/models"
)

// AssignTechnician attaches a technician to an active booking so the
// confirmed visit shows up in that technician's daily route.
type AssignTechnician struct {
	repo  domain.Repository
	techs domain.TechnicianRepository
	audit *audit.Dispatcher
}

func NewAssignTechnician(
	repo domain.Repository,
	techs domain.TechnicianRepository,
	auditor *audit.Dispatcher,
) *AssignTechnician {
	return &AssignTechnician{
		repo:  repo,
		techs: techs,
		audit: auditor,
	}
}

func (uc *AssignTechnician) Execute(
	ctx context.Context,
	operatorID *uint,
	bookingID uint,
	technicianID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	if !domain.Status(b.Status).Active() {
		return nil, httperr.ErrBusiness("booking_not_active")
	}

	tech, err := uc.techs.GetByID(ctx, technicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	b.TechnicianID = &tech.ID
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   operatorID,
		Action:   "booking_assigned",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"technician_id": tech.ID},
	})

	return b, nil
}
