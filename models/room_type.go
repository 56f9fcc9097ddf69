package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomType Struct (นิยามเพียงแห่งเดียวในโปรเจกต์)
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TypeName    string `gorm:"size:128" json:"typeName"`
	Description string `gorm:"type:text" json:"description"`

	// MaxGuests = guests allowed per room of this type
	MaxGuests int `gorm:"column:max_guests" json:"maxGuests"`

	// Rates in the smallest currency unit.
	HourlyRate int64 `gorm:"column:hourly_rate" json:"hourlyRate"`
	DailyRate  int64 `gorm:"column:daily_rate" json:"dailyRate"`

	Images datatypes.JSON `gorm:"column:images" json:"images,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
