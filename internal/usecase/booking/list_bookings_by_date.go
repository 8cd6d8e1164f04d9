package booking

import (
	"context"
	"time"

	"github.com/SweepOpsFR/sweep-scheduler/internal/config"
	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/dto"
	"github.com/SweepOpsFR/sweep-scheduler/internal/models"
	"github.com/SweepOpsFR/sweep-scheduler/internal/timezone"
)

type ListBookingsByDate struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListBookingsByDate(
	repo domain.Repository,
	cfg *config.Config,
) *ListBookingsByDate {
	return &ListBookingsByDate{
		repo: repo,
		loc:  timezone.Location(cfg.Timezone),
	}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	date time.Time,
) ([]dto.BookingListDTO, error) {

	start := timezone.Midnight(date.In(uc.loc))
	end := start.AddDate(0, 0, 1)

	bookings, err := uc.repo.ListForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return toListDTOs(bookings), nil
}

func toListDTOs(bookings []models.Booking) []dto.BookingListDTO {
	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		item := dto.BookingListDTO{
			ID:           b.ID,
			PublicRef:    b.PublicRef,
			Date:         b.Date,
			Slot:         b.Slot,
			Status:       b.Status,
			ServiceType:  b.ServiceType,
			ClientName:   b.ClientName,
			City:         b.City,
			TechnicianID: b.TechnicianID,
		}
		if b.Technician != nil {
			item.TechnicianName = b.Technician.Name
		}
		out = append(out, item)
	}
	return out
}
