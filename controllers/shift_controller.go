package controllers

import (
	"errors"
	"net/http"
	"time"

	"hotel-booking-backend/config"
	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Staff scheduling: shifts plus the schedules that assign them.

type shiftPayload struct {
	ShiftName string    `json:"shiftName" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

func GetShifts(c *gin.Context) {
	var shifts []models.Shift
	if err := config.DB.Order("start_time ASC").Find(&shifts).Error; err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, shifts)
}

func CreateShift(c *gin.Context) {
	var p shiftPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if !p.StartTime.Before(p.EndTime) {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", "startTime must be before endTime")
		return
	}
	shift := models.Shift{ShiftName: p.ShiftName, StartTime: p.StartTime, EndTime: p.EndTime}
	if err := config.DB.Create(&shift).Error; err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, shift)
}

func DeleteShift(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	res := config.DB.Delete(&models.Shift{}, id)
	if res.Error != nil {
		utils.RenderError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "shift_not_found", "shift doesn't exist")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "shift deleted"})
}

type schedulePayload struct {
	UserID   uint   `json:"userId" binding:"required"`
	ShiftIDs []uint `json:"shiftIds" binding:"required"`
}

func GetSchedules(c *gin.Context) {
	var schedules []models.Schedule
	if err := config.DB.Preload("User").Preload("Shifts").Find(&schedules).Error; err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, schedules)
}

func CreateSchedule(c *gin.Context) {
	var p schedulePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("id = ? AND role = ?", p.UserID, models.RoleStaff).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "user_not_found", "staff user doesn't exist")
			return
		}
		utils.RenderError(c, err)
		return
	}

	var shifts []models.Shift
	if err := config.DB.Where("id IN ?", p.ShiftIDs).Find(&shifts).Error; err != nil {
		utils.RenderError(c, err)
		return
	}
	if len(shifts) != len(p.ShiftIDs) {
		utils.JSONError(c, http.StatusNotFound, "shift_not_found", "one or more shift ids do not exist")
		return
	}

	schedule := models.Schedule{UserID: p.UserID, Shifts: shifts}
	if err := config.DB.Create(&schedule).Error; err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, schedule)
}

func DeleteSchedule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	res := config.DB.Select("Shifts").Delete(&models.Schedule{ID: id})
	if res.Error != nil {
		utils.RenderError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "schedule_not_found", "schedule doesn't exist")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "schedule deleted"})
}
