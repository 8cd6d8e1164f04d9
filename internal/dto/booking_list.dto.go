package dto

import "time"

type BookingListDTO struct {
	ID          uint      `json:"id"`
	PublicRef   string    `json:"public_ref"`
	Date        time.Time `json:"date"`
	Slot        string    `json:"slot"`
	Status      string    `json:"status"`
	ServiceType string    `json:"service_type"`
	ClientName  string    `json:"client_name"`
	City        string    `json:"city"`

	TechnicianID   *uint  `json:"technician_id,omitempty"`
	TechnicianName string `json:"technician_name,omitempty"`
}
