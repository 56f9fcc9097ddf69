package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"hotel-booking-backend/config"
	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type maintainSchedulePayload struct {
	RoomID       uint      `json:"roomId" binding:"required"`
	ScheduleDate time.Time `json:"scheduleDate" binding:"required"`
	Description  string    `json:"description" binding:"required"`
	Price        int64     `json:"price"`
	Status       *bool     `json:"status"`
}

func (p *maintainSchedulePayload) validate() string {
	if strings.TrimSpace(p.Description) == "" {
		return "description is required"
	}
	if p.Price < 0 {
		return "price must not be negative"
	}
	return ""
}

func GetMaintainSchedules(c *gin.Context) {
	q := config.DB.Preload("Room")
	if v := c.Query("roomId"); v != "" {
		q = q.Where("room_id = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("status = ?", v == "true")
	}
	var schedules []models.MaintainSchedule
	if err := q.Order("schedule_date ASC").Find(&schedules).Error; err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, schedules)
}

func GetMaintainScheduleByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var schedule models.MaintainSchedule
	if err := config.DB.Preload("Room").First(&schedule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "maintain_schedule_not_found", "maintain schedule doesn't exist")
			return
		}
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, schedule)
}

func CreateMaintainSchedule(c *gin.Context) {
	var p maintainSchedulePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if msg := p.validate(); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", msg)
		return
	}

	var room models.Room
	if err := config.DB.First(&room, p.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room_not_found", "room doesn't exist")
			return
		}
		utils.RenderError(c, err)
		return
	}

	schedule := models.MaintainSchedule{
		RoomID:       p.RoomID,
		ScheduleDate: p.ScheduleDate,
		Description:  strings.TrimSpace(p.Description),
		Price:        p.Price,
		Status:       true,
	}
	if p.Status != nil {
		schedule.Status = *p.Status
	}
	if err := config.DB.Create(&schedule).Error; err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, schedule)
}

func UpdateMaintainSchedule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var schedule models.MaintainSchedule
	if err := config.DB.First(&schedule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "maintain_schedule_not_found", "maintain schedule doesn't exist")
			return
		}
		utils.RenderError(c, err)
		return
	}

	var p maintainSchedulePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if msg := p.validate(); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", msg)
		return
	}

	var room models.Room
	if err := config.DB.First(&room, p.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room_not_found", "room doesn't exist")
			return
		}
		utils.RenderError(c, err)
		return
	}

	schedule.RoomID = p.RoomID
	schedule.ScheduleDate = p.ScheduleDate
	schedule.Description = strings.TrimSpace(p.Description)
	schedule.Price = p.Price
	if p.Status != nil {
		schedule.Status = *p.Status
	}
	if err := config.DB.Save(&schedule).Error; err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, schedule)
}

func DeleteMaintainSchedule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	res := config.DB.Delete(&models.MaintainSchedule{}, id)
	if res.Error != nil {
		utils.RenderError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "maintain_schedule_not_found", "maintain schedule doesn't exist")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "maintain schedule deleted"})
}
