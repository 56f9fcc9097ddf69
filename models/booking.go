package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking lifecycle statuses.
const (
	BookingReserved  = "Reserved"
	BookingCancelled = "Cancelled"
	BookingLeft      = "Left"
)

func IsBookingStatus(s string) bool {
	return s == BookingReserved || s == BookingCancelled || s == BookingLeft
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID        uint   `gorm:"index;column:user_id" json:"userId"`
	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"referenceCode,omitempty"`

	CheckInTime  time.Time `gorm:"column:check_in_time;index" json:"checkInTime"`
	CheckOutTime time.Time `gorm:"column:check_out_time;index" json:"checkOutTime"`

	NumberOfGuests int `gorm:"column:number_of_guests" json:"numberOfGuests"`

	// Money in the smallest currency unit. TotalAmount is the computed price
	// and may be negative when discount plus redemption exceed base plus the
	// extra charge.
	TotalAmount int64      `gorm:"column:total_amount" json:"totalAmount"`
	PaidAmount  int64      `gorm:"column:paid_amount" json:"paidAmount"`
	LastPaidAt  *time.Time `gorm:"column:last_paid_at" json:"lastPaidAt,omitempty"`

	PaymentMethod string `gorm:"column:payment_method;size:64" json:"paymentMethod"`

	// Only Reserved bookings participate in conflict checks.
	CurrentStatus string `gorm:"column:current_status;size:32;index" json:"currentStatus"`

	User  User          `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Rooms []BookingRoom `gorm:"foreignKey:BookingID" json:"rooms"`
}
