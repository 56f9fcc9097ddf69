package models

import (
	"time"

	"gorm.io/gorm"
)

type Rating struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID  uint `gorm:"column:booking_id;uniqueIndex:uniq_booking_type_rating" json:"bookingId"`
	RoomTypeID uint `gorm:"column:room_type_id;uniqueIndex:uniq_booking_type_rating" json:"roomTypeId"`

	Score    int    `gorm:"column:score" json:"score"`
	Feedback string `gorm:"type:text" json:"feedback,omitempty"`

	Booking  Booking  `gorm:"foreignKey:BookingID;references:ID" json:"booking,omitempty"`
	RoomType RoomType `gorm:"foreignKey:RoomTypeID;references:ID" json:"roomType,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
