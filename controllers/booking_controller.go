// controllers/booking_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// actorFrom reads what RequireAuth stored in the context.
func actorFrom(c *gin.Context) services.Actor {
	actor := services.Actor{Role: c.GetString("role")}
	if v, ok := c.Get("userId"); ok {
		if id, ok2 := v.(uint); ok2 {
			actor.UserID = id
		}
	}
	return actor
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// CreateBooking (POST /api/bookings)
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req services.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	booking, err := bc.BookingSvc.Create(actorFrom(c), &req)
	if err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GetBookings (GET /api/bookings) with filters and pagination. The total page
// count goes out in X-Total-Count.
func (bc *BookingController) GetBookings(c *gin.Context) {
	var filter services.BookingFilter
	var err error

	filter.Page, err = strconv.Atoi(c.DefaultQuery("page", ""))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", "page is required and must be an integer")
		return
	}
	filter.Size, err = strconv.Atoi(c.DefaultQuery("size", ""))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", "size is required and must be an integer")
		return
	}

	if v := c.Query("userId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "validation_error", "userId must be an integer")
			return
		}
		filter.UserID = uint(id)
	}
	if v := c.Query("roomId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "validation_error", "roomId must be an integer")
			return
		}
		filter.RoomID = uint(id)
	}
	filter.CurrentStatus = c.Query("currentStatus")

	if v := c.Query("checkInTime"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "validation_error", "checkInTime must be RFC3339")
			return
		}
		filter.CheckInTime = &t
	}
	if v := c.Query("checkOutTime"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "validation_error", "checkOutTime must be RFC3339")
			return
		}
		filter.CheckOutTime = &t
	}

	bookings, totalPages, err := bc.BookingSvc.List(filter)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(totalPages))
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetBookingByID (GET /api/bookings/:id)
func (bc *BookingController) GetBookingByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := bc.BookingSvc.GetByID(actorFrom(c), id)
	if err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// UpdateBooking (PUT /api/bookings/:id) partial update, re-validated.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req services.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	booking, err := bc.BookingSvc.Update(actorFrom(c), id, &req)
	if err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
