package booking

import "time"

// AvailabilityInput is a month-level availability query. PostalCode is
// empty for the admin control-panel view (no zone gate).
type AvailabilityInput struct {
	Year       int
	Month      time.Month
	PostalCode string
}

// SlotCount is one aggregated row of active bookings per (date, slot).
type SlotCount struct {
	Date  time.Time
	Slot  string
	Total int
}

// CapacityConfig is the availability engine's per-slot configuration.
type CapacityConfig struct {
	Morning   int
	Afternoon int
}

func (c CapacityConfig) For(slot Slot) int {
	if slot == SlotAfternoon {
		return c.Afternoon
	}
	return c.Morning
}
