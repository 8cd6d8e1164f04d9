package booking

import (
	"context"
	"time"

	"github.com/SweepOpsFR/sweep-scheduler/internal/config"
	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/dto"
	"github.com/SweepOpsFR/sweep-scheduler/internal/timezone"
)

type ListBookingsByMonth struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListBookingsByMonth(
	repo domain.Repository,
	cfg *config.Config,
) *ListBookingsByMonth {
	return &ListBookingsByMonth{
		repo: repo,
		loc:  timezone.Location(cfg.Timezone),
	}
}

func (uc *ListBookingsByMonth) Execute(
	ctx context.Context,
	year int,
	month time.Month,
) ([]dto.BookingListDTO, error) {

	start := time.Date(year, month, 1, 0, 0, 0, 0, uc.loc)
	end := start.AddDate(0, 1, 0)

	bookings, err := uc.repo.ListForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return toListDTOs(bookings), nil
}
