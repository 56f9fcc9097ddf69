package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-booking-backend/config"
	"hotel-booking-backend/controllers"
	"hotel-booking-backend/middleware"
	"hotel-booking-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter รับ Controller Instances เข้ามาเพื่อกำหนด Route
func SetupRouter(
	ac *controllers.AuthController,
	bc *controllers.BookingController,
	rc *controllers.RatingController,
	uc *controllers.UserController,
	cfg config.App,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Total-Count"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
		}

		authed := api.Group("")
		authed.Use(middleware.RequireAuth(cfg.JWTSecret))
		staffOnly := middleware.RequireRoles(models.RoleStaff, models.RoleAdmin)
		adminOnly := middleware.RequireRoles(models.RoleAdmin)

		staffs := authed.Group("/staffs")
		{
			staffs.GET("", adminOnly, uc.GetStaffs)
			staffs.POST("", adminOnly, uc.CreateStaff)
			staffs.GET("/:id", uc.GetStaffByID)
			staffs.PUT("/:id", uc.UpdateStaff)
		}

		customers := authed.Group("/customers")
		{
			customers.GET("", staffOnly, uc.GetCustomers)
			customers.GET("/:id", uc.GetCustomerByID)
			customers.PUT("/:id", uc.UpdateCustomer)
		}

		bookings := authed.Group("/bookings")
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("", bc.GetBookings)
			bookings.GET("/:id", bc.GetBookingByID)
			bookings.PUT("/:id", bc.UpdateBooking)
		}

		roomTypes := authed.Group("/room-types")
		{
			roomTypes.GET("", controllers.GetRoomTypes)
			roomTypes.GET("/:id", controllers.GetRoomTypeByID)
			roomTypes.POST("", staffOnly, controllers.CreateRoomType)
			roomTypes.PUT("/:id", staffOnly, controllers.UpdateRoomType)
			roomTypes.DELETE("/:id", staffOnly, controllers.DeleteRoomType)
		}

		rooms := authed.Group("/rooms")
		{
			rooms.GET("", controllers.GetRooms)
			rooms.GET("/:id", controllers.GetRoomByID)
			rooms.POST("", staffOnly, controllers.CreateRoom)
			rooms.PUT("/:id", staffOnly, controllers.UpdateRoom)
			rooms.DELETE("/:id", staffOnly, controllers.DeleteRoom)
		}

		vouchers := authed.Group("/vouchers")
		{
			vouchers.GET("", controllers.GetVouchers)
			vouchers.GET("/:id", controllers.GetVoucherByID)
			vouchers.POST("", staffOnly, controllers.CreateVoucher)
			vouchers.PUT("/:id", staffOnly, controllers.UpdateVoucher)
			vouchers.DELETE("/:id", staffOnly, controllers.DeleteVoucher)
		}

		charges := authed.Group("/over-occupancy-charges")
		{
			charges.GET("", controllers.GetOverOccupancyCharges)
			charges.GET("/:id", controllers.GetOverOccupancyChargeByID)
			charges.POST("", staffOnly, controllers.CreateOverOccupancyCharge)
			charges.PUT("/:id", staffOnly, controllers.UpdateOverOccupancyCharge)
			charges.DELETE("/:id", staffOnly, controllers.DeleteOverOccupancyCharge)
		}

		ratings := authed.Group("/ratings")
		{
			ratings.GET("", rc.GetRatings)
			ratings.GET("/:id", rc.GetRatingByID)
			ratings.POST("", rc.CreateRating)
			ratings.PUT("/:id", rc.UpdateRating)
			ratings.DELETE("/:id", rc.DeleteRating)
		}

		shifts := authed.Group("/shifts")
		{
			shifts.GET("", staffOnly, controllers.GetShifts)
			shifts.POST("", staffOnly, controllers.CreateShift)
			shifts.DELETE("/:id", staffOnly, controllers.DeleteShift)
		}

		schedules := authed.Group("/schedules")
		{
			schedules.GET("", staffOnly, controllers.GetSchedules)
			schedules.POST("", staffOnly, controllers.CreateSchedule)
			schedules.DELETE("/:id", staffOnly, controllers.DeleteSchedule)
		}

		maintains := authed.Group("/maintain-schedules")
		{
			maintains.GET("", staffOnly, controllers.GetMaintainSchedules)
			maintains.GET("/:id", staffOnly, controllers.GetMaintainScheduleByID)
			maintains.POST("", staffOnly, controllers.CreateMaintainSchedule)
			maintains.PUT("/:id", staffOnly, controllers.UpdateMaintainSchedule)
			maintains.DELETE("/:id", staffOnly, controllers.DeleteMaintainSchedule)
		}
	}

	return r
}
