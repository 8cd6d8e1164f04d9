package dto

import "time"

type SlotAvailability struct {
	Available   bool `json:"available"`
	Remaining   int  `json:"remaining"`
	BookedCount int  `json:"booked_count"`
}

// DayAvailability is one day of the public/admin month grid. BlockedSlot is
// "morning", "afternoon" or "both" for slot-scoped blocks, empty otherwise.
type DayAvailability struct {
	Date    time.Time `json:"date"`
	Weekday int       `json:"weekday"`

	Morning   SlotAvailability `json:"morning"`
	Afternoon SlotAvailability `json:"afternoon"`

	IsPast      bool   `json:"is_past"`
	IsToday     bool   `json:"is_today"`
	IsBlocked   bool   `json:"is_blocked"`
	BlockedSlot string `json:"blocked_slot,omitempty"`
}

// Selectable reports whether the public flow lets the citizen pick the day.
func (d DayAvailability) Selectable() bool {
	return d.Morning.Available || d.Afternoon.Available
}
