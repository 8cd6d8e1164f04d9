package models

import "time"

type Technician struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`

	// Color drives the planning view only.
	Color string `gorm:"size:10" json:"color"`

	// Fixed point every route starts from, geocoded when the address is set.
	StartAddress string  `gorm:"size:255" json:"start_address"`
	StartLat     float64 `json:"start_lat"`
	StartLng     float64 `json:"start_lng"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
