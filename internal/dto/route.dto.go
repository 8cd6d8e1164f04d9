package dto

import (
	"time"

	"github.com/SweepOpsFR/sweep-scheduler/internal/domain/routing"
)

// RouteDTO is a technician's ordered day. Skipped counts stops left out
// because their address could not be geocoded; the route stays best-effort.
type RouteDTO struct {
	TechnicianID   uint           `json:"technician_id"`
	TechnicianName string         `json:"technician_name"`
	Color          string         `json:"color"`
	Date           time.Time      `json:"date"`
	Start          routing.Point  `json:"start"`
	StartAddress   string         `json:"start_address"`
	Stops          []routing.Stop `json:"stops"`
	Skipped        int            `json:"skipped"`
}
