package models

import "time"

// OverOccupancyCharge is a lookup bracket: an excess-guest count with no exact
// match falls through to the smallest threshold strictly above it.
type OverOccupancyCharge struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ExcessGuests int   `gorm:"column:excess_guests;uniqueIndex" json:"excessGuests"`
	ExtraCharge  int64 `gorm:"column:extra_charge" json:"extraCharge"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
