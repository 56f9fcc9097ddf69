package models

import "time"

type Shift struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ShiftName string    `gorm:"size:128" json:"shiftName"`
	StartTime time.Time `gorm:"column:start_time" json:"startTime"`
	EndTime   time.Time `gorm:"column:end_time" json:"endTime"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Schedule assigns shifts to a staff member.
type Schedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint    `gorm:"column:user_id;index" json:"userId"`
	User   User    `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Shifts []Shift `gorm:"many2many:schedule_shifts;" json:"shifts"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
