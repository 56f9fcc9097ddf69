package models

import (
	"gorm.io/gorm"
)

type BookingRoom struct {
	gorm.Model
	BookingID uint `gorm:"index;column:booking_id;uniqueIndex:uniq_booking_room" json:"booking_id"`
	RoomID    uint `gorm:"index;column:room_id;uniqueIndex:uniq_booking_room" json:"room_id"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
