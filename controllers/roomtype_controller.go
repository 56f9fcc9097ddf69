package controllers

import (
	"errors"
	"net/http"

	"hotel-booking-backend/config"
	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetRoomTypes(c *gin.Context) {
	var types []models.RoomType
	if err := config.DB.Find(&types).Error; err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func GetRoomTypeByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var rt models.RoomType
	if err := config.DB.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room_type_not_found", "room type doesn't exist")
			return
		}
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

func CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if rt.MaxGuests <= 0 || rt.HourlyRate < 0 || rt.DailyRate < 0 {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", "maxGuests must be positive and rates non-negative")
		return
	}

	if err := config.DB.Create(&rt).Error; err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

func UpdateRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var rt models.RoomType
	if err := config.DB.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room_type_not_found", "room type doesn't exist")
			return
		}
		utils.RenderError(c, err)
		return
	}

	var patch models.RoomType
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	patch.ID = rt.ID
	if err := config.DB.Model(&rt).Updates(patch).Error; err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

func DeleteRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := config.DB.Delete(&models.RoomType{}, id).Error; err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room type deleted"})
}
