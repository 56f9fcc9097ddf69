// services/pricing.go
package services

import (
	"math"
	"sort"
	"time"

	"hotel-booking-backend/models"
)

// PointValue: fixed conversion rate, 1 loyalty point = 1000 currency units.
const PointValue = 1000

// DepositRate: minimum fraction of the total that must be paid up front.
const DepositRate = 0.2

// Quote is the price breakdown of one booking request.
type Quote struct {
	BasePrice      int64 `json:"basePrice"`
	ExtraCharge    int64 `json:"extraCharge"`
	Discount       int64 `json:"discount"`
	RedeemedAmount int64 `json:"redeemedAmount"`
	TotalAmount    int64 `json:"totalAmount"`
}

// StayHours = ceil(window / 1h); billing never charges fractional hours.
func StayHours(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours()))
}

// BasePriceFor prices one room of the given type over the window:
// full days at the daily rate plus the remaining hours at the hourly rate.
func BasePriceFor(rt *models.RoomType, checkIn, checkOut time.Time) int64 {
	hours := StayHours(checkIn, checkOut)
	days := hours / 24
	remaining := hours - days*24
	return rt.DailyRate*int64(days) + rt.HourlyRate*int64(remaining)
}

// ResolveExtraCharge picks the charge for an excess-guest count: exact match
// first, otherwise the smallest threshold strictly above the excess. No
// bracket above means the request exceeds the permitted excess.
func ResolveExtraCharge(charges []models.OverOccupancyCharge, excess int) (int64, error) {
	if excess <= 0 {
		return 0, nil
	}
	var higher []models.OverOccupancyCharge
	for _, c := range charges {
		if c.ExcessGuests == excess {
			return c.ExtraCharge, nil
		}
		if c.ExcessGuests > excess {
			higher = append(higher, c)
		}
	}
	if len(higher) == 0 {
		return 0, ErrOverOccupancyExceeded
	}
	sort.Slice(higher, func(i, j int) bool { return higher[i].ExcessGuests < higher[j].ExcessGuests })
	return higher[0].ExtraCharge, nil
}

// DiscountFor = min(basePrice * pct/100, maxDiscount). Kept unrounded so the
// total is rounded exactly once.
func DiscountFor(v *models.Voucher, basePrice int64) float64 {
	if v == nil {
		return 0
	}
	d := float64(basePrice) * float64(v.DiscountPercentage) / 100
	if d > float64(v.MaxDiscount) {
		return float64(v.MaxDiscount)
	}
	return d
}

// BuildQuote assembles the breakdown. The total intentionally has no floor at
// zero: when discount plus redemption exceed base plus extra charge the
// nominal total goes negative and the deposit rule still applies to it.
func BuildQuote(basePrice, extraCharge int64, voucher *models.Voucher, redeemedPoints int64) Quote {
	discount := DiscountFor(voucher, basePrice)
	redeemed := redeemedPoints * PointValue
	total := int64(math.Round(float64(basePrice) - discount - float64(redeemed) + float64(extraCharge)))
	return Quote{
		BasePrice:      basePrice,
		ExtraCharge:    extraCharge,
		Discount:       int64(math.Round(discount)),
		RedeemedAmount: redeemed,
		TotalAmount:    total,
	}
}

// RequiredDeposit = round(total * 0.2).
func RequiredDeposit(total int64) int64 {
	return int64(math.Round(float64(total) * DepositRate))
}

// CheckDeposit returns ErrInsufficientDeposit with both actual and required
// amounts when the paid amount is short.
func CheckDeposit(total, paid int64) error {
	required := RequiredDeposit(total)
	if paid < required {
		return ErrInsufficientDeposit.WithMessagef(
			"the amount paid does not meet the required deposit (20%% of total amount): total is %d, must pay at least %d, got %d",
			total, required, paid)
	}
	return nil
}
