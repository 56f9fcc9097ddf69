package controllers

import (
	"fmt"
	"testing"

	"hotel-booking-backend/config"
	"hotel-booking-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRouter swaps config.DB for a per-test in-memory database and returns
// a bare engine to register the handlers under test on.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	config.DB = db
	return gin.New()
}
