package services

import (
	"fmt"
	"testing"
	"time"

	"hotel-booking-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database. The shared-cache DSN keyed
// by test name keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RoomType{},
		&models.Room{},
		&models.Booking{},
		&models.BookingRoom{},
		&models.Voucher{},
		&models.VoucherUsage{},
		&models.OverOccupancyCharge{},
		&models.Rating{},
		&models.Shift{},
		&models.Schedule{},
		&models.MaintainSchedule{},
	))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, email string, points int64) *models.User {
	t.Helper()
	user, err := models.NewUser(email, "password123", "Test Customer", "Other", models.RoleCustomer)
	require.NoError(t, err)
	user.Point = points
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedRoomType(t *testing.T, db *gorm.DB, name string, maxGuests int, hourly, daily int64) *models.RoomType {
	t.Helper()
	rt := &models.RoomType{TypeName: name, MaxGuests: maxGuests, HourlyRate: hourly, DailyRate: daily}
	require.NoError(t, db.Create(rt).Error)
	return rt
}

func seedRoom(t *testing.T, db *gorm.DB, rt *models.RoomType, number string) *models.Room {
	t.Helper()
	room := &models.Room{RoomTypeID: rt.ID, RoomNumber: number, Active: true}
	require.NoError(t, db.Create(room).Error)
	return room
}

func seedBooking(t *testing.T, db *gorm.DB, user *models.User, status string, checkIn, checkOut time.Time, rooms ...*models.Room) *models.Booking {
	t.Helper()
	booking := &models.Booking{
		UserID:         user.ID,
		ReferenceCode:  fmt.Sprintf("ref-%s-%d", t.Name(), time.Now().UnixNano()),
		CheckInTime:    checkIn,
		CheckOutTime:   checkOut,
		NumberOfGuests: 1,
		PaymentMethod:  "cash",
		CurrentStatus:  status,
	}
	require.NoError(t, db.Create(booking).Error)
	for _, room := range rooms {
		require.NoError(t, db.Create(&models.BookingRoom{BookingID: booking.ID, RoomID: room.ID}).Error)
	}
	return booking
}

func seedVoucher(t *testing.T, db *gorm.DB, code string, pct int, minSpend, maxDiscount int64, limitUse int) *models.Voucher {
	t.Helper()
	now := time.Now().UTC()
	v := &models.Voucher{
		Code:               code,
		DiscountPercentage: pct,
		MinSpend:           minSpend,
		MaxDiscount:        maxDiscount,
		StartDate:          now.Add(-24 * time.Hour),
		EndDate:            now.Add(365 * 24 * time.Hour),
		LimitUse:           limitUse,
	}
	require.NoError(t, db.Create(v).Error)
	return v
}

// stayIn returns a window that starts comfortably in the future.
func stayIn(days int, length time.Duration) (time.Time, time.Time) {
	checkIn := time.Now().UTC().Add(time.Duration(days) * 24 * time.Hour).Truncate(time.Hour)
	return checkIn, checkIn.Add(length)
}
