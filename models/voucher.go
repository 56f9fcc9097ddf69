package models

import (
	"time"

	"gorm.io/gorm"
)

type Voucher struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Code        string `gorm:"uniqueIndex;size:64" json:"code"`
	Description string `gorm:"type:text" json:"description"`

	DiscountPercentage int   `gorm:"column:discount_percentage" json:"discountPercentage"`
	MinSpend           int64 `gorm:"column:min_spend" json:"minSpend"`
	MaxDiscount        int64 `gorm:"column:max_discount" json:"maxDiscount"`

	StartDate time.Time `gorm:"column:start_date" json:"startDate"`
	EndDate   time.Time `gorm:"column:end_date" json:"endDate"`

	LimitUse int `gorm:"column:limit_use" json:"limitUse"`

	Usages []VoucherUsage `gorm:"foreignKey:VoucherID" json:"usages,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// VoucherUsage rows grow monotonically via redemption. The unique index is
// what makes one-use-per-user hold under concurrent redemption attempts.
type VoucherUsage struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	VoucherID uint `gorm:"column:voucher_id;uniqueIndex:uniq_voucher_user" json:"voucherId"`
	UserID    uint `gorm:"column:user_id;uniqueIndex:uniq_voucher_user" json:"userId"`

	CreatedAt time.Time
}
