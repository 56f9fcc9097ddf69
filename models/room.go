package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	RoomTypeID uint   `json:"roomTypeId" gorm:"column:room_type_id;index"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`

	// Active = false means the room is never offered. Rooms are soft-disabled,
	// not deleted, while bookings still reference them.
	Active bool `json:"active" gorm:"column:active;default:true"`

	Description string `json:"description" gorm:"type:text"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`
}
