package services

import (
	"testing"
	"time"

	"hotel-booking-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStayHours(t *testing.T) {
	checkIn := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 28, StayHours(checkIn, time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, StayHours(checkIn, checkIn.Add(30*time.Minute)), "partial hours round up")
	assert.Equal(t, 24, StayHours(checkIn, checkIn.Add(24*time.Hour)))
}

func TestBasePriceFor(t *testing.T) {
	rt := &models.RoomType{DailyRate: 1000000, HourlyRate: 50000}
	checkIn := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)

	// 28 hours = 1 day + 4 hours
	price := BasePriceFor(rt, checkIn, checkOut)
	assert.Equal(t, int64(1200000), price)
	assert.Equal(t, int64(2400000), price*2, "two rooms of the same type")
}

func TestResolveExtraCharge(t *testing.T) {
	charges := []models.OverOccupancyCharge{
		{ExcessGuests: 5, ExtraCharge: 300},
		{ExcessGuests: 2, ExtraCharge: 100},
	}

	got, err := ResolveExtraCharge(charges, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)

	got, err = ResolveExtraCharge(charges, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got, "exact threshold match")

	got, err = ResolveExtraCharge(charges, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(300), got, "closest higher bracket, not the lower one")

	_, err = ResolveExtraCharge(charges, 6)
	assert.ErrorIs(t, err, ErrOverOccupancyExceeded)

	_, err = ResolveExtraCharge(nil, 1)
	assert.ErrorIs(t, err, ErrOverOccupancyExceeded)
}

func TestBuildQuote(t *testing.T) {
	voucher := &models.Voucher{DiscountPercentage: 20, MaxDiscount: 150000}

	q := BuildQuote(1000000, 50000, voucher, 100)
	assert.Equal(t, int64(1000000), q.BasePrice)
	assert.Equal(t, int64(150000), q.Discount, "capped at maxDiscount")
	assert.Equal(t, int64(100000), q.RedeemedAmount)
	assert.Equal(t, int64(800000), q.TotalAmount)

	q = BuildQuote(500000, 0, voucher, 0)
	assert.Equal(t, int64(100000), q.Discount, "20% under the cap")
	assert.Equal(t, int64(400000), q.TotalAmount)

	// Redemption above base: the total goes negative and stays negative.
	q = BuildQuote(100000, 0, nil, 200)
	assert.Equal(t, int64(-100000), q.TotalAmount)
}

func TestCheckDeposit(t *testing.T) {
	assert.NoError(t, CheckDeposit(1000, 200))
	assert.NoError(t, CheckDeposit(1000, 1000))

	err := CheckDeposit(1000, 199)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientDeposit)
	assert.Contains(t, err.Error(), "200")
	assert.Contains(t, err.Error(), "199")
}
