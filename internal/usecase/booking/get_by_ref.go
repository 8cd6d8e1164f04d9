package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
	"github.com/SweepOpsFR/sweep-scheduler/internal/models"
)

type GetBookingByRef struct {
	repo domain.Repository
}

func NewGetBookingByRef(repo domain.Repository) *GetBookingByRef {
	return &GetBookingByRef{repo: repo}
}

func (uc *GetBookingByRef) Execute(
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
	return b, nil
}
