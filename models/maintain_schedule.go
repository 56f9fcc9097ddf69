package models

import "time"

// MaintainSchedule is a planned maintenance job on one room. Status true
// means the job is still open.
type MaintainSchedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomID uint `gorm:"column:room_id;index" json:"roomId"`
	Room   Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`

	ScheduleDate time.Time `gorm:"column:schedule_date" json:"scheduleDate"`
	Description  string    `gorm:"type:text" json:"description"`
	Price        int64     `gorm:"column:price" json:"price"`
	Status       bool      `gorm:"column:status;default:true" json:"status"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
