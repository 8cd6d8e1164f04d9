package models

import "time"

// Block is an operator override removing bookability from a day or a single
// slot. Slot is "" for a whole-day block; the composite unique index keeps
// at most one record per (date, slot).
type Block struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date time.Time `gorm:"type:date;uniqueIndex:idx_blocks_date_slot" json:"date"`
	Slot string    `gorm:"size:10;uniqueIndex:idx_blocks_date_slot" json:"slot"`

	Reason string `gorm:"size:255" json:"reason"`

	CreatedBy *uint `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
