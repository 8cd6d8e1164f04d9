package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// PublicRef is handed to the citizen at creation (lookup + self-cancel).
	PublicRef string `gorm:"size:36;uniqueIndex;not null" json:"public_ref"`

	Date time.Time `gorm:"type:date;index:idx_bookings_date_slot" json:"date"`
	Slot string    `gorm:"size:10;index:idx_bookings_date_slot" json:"slot"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Service descriptors, opaque to the scheduling core.
	ServiceType   string `gorm:"size:50" json:"service_type"`
	EquipmentType string `gorm:"size:50" json:"equipment_type"`
	BrandModel    string `gorm:"size:100" json:"brand_model"`
	ExhaustType   string `gorm:"size:50" json:"exhaust_type"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`
	ClientEmail string `gorm:"size:100" json:"client_email"`

	Address    string `gorm:"size:255" json:"address"`
	PostalCode string `gorm:"size:10" json:"postal_code"`
	City       string `gorm:"size:100" json:"city"`

	Notes string `gorm:"size:255" json:"notes"`

	TechnicianID *uint       `json:"technician_id"`
	Technician   *Technician `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"technician,omitempty"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	RejectedAt  *time.Time `json:"rejected_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
