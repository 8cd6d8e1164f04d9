package route

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/domain/routing"
	"github.com/SweepOpsFR/sweep-scheduler/internal/dto"
	"github.com/SweepOpsFR/sweep-scheduler/internal/geo"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
)

// BuildRoute projects a technician's confirmed bookings for one day onto
// geocoded stops and orders them with the nearest-neighbor sequencer. A
// stop whose address cannot be resolved is dropped with a warning, never
// fatal: the operator always gets an order for the stops that can be
// placed.
type BuildRoute struct {
	repo     domain.Repository
	techs    domain.TechnicianRepository
	geocoder geo.Geocoder
	log      *zap.Logger
}

func NewBuildRoute(
	repo domain.Repository,
	techs domain.TechnicianRepository,
	geocoder geo.Geocoder,
	log *zap.Logger,
) *BuildRoute {
	return &BuildRoute{
		repo:     repo,
		techs:    techs,
		geocoder: geocoder,
		log:      log,
	}
}

func (uc *BuildRoute) Execute(
	ctx context.Context,
	technicianID uint,
	date time.Time,
) (*dto.RouteDTO, error) {

	tech, err := uc.techs.GetByID(ctx, technicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	bookings, err := uc.repo.ListConfirmedForTechnician(ctx, tech.ID, date)
	if err != nil {
		return nil, err
	}

	stops := make([]routing.Stop, 0, len(bookings))
	skipped := 0

	for _, b := range bookings {
		address := fmt.Sprintf("%s %s %s", b.Address, b.PostalCode, b.City)

		loc, err := uc.geocoder.Resolve(ctx, address)
		if err != nil {
			skipped++
			uc.log.Warn("dropping stop with unresolved address",
				zap.Uint("booking_id", b.ID),
				zap.String("address", address),
				zap.Error(err),
			)
			continue
		}

		slot := domain.Slot(b.Slot)
		stops = append(stops, routing.Stop{
			BookingID: b.ID,
			Location:  routing.Point{Lat: loc.Lat, Lng: loc.Lng},
			Address:   loc.Label,
			Client:    b.ClientName,
			Slot:      b.Slot,
			Window:    slot.Window(),
		})
	}

	start := routing.Point{Lat: tech.StartLat, Lng: tech.StartLng}

	return &dto.RouteDTO{
		TechnicianID:   tech.ID,
		TechnicianName: tech.Name,
		Color:          tech.Color,
		Date:           date,
		Start:          start,
		StartAddress:   tech.StartAddress,
		Stops:          routing.Sequence(start, stops),
		Skipped:        skipped,
	}, nil
}
