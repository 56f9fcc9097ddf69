package controllers

import (
	"errors"
	"net/http"
	"strings"

	"hotel-booking-backend/config"
	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type chargePayload struct {
	ExcessGuests int   `json:"excessGuests" binding:"required"`
	ExtraCharge  int64 `json:"extraCharge" binding:"required"`
}

func GetOverOccupancyCharges(c *gin.Context) {
	var charges []models.OverOccupancyCharge
	if err := config.DB.Order("excess_guests ASC").Find(&charges).Error; err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, charges)
}

func GetOverOccupancyChargeByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var charge models.OverOccupancyCharge
	if err := config.DB.First(&charge, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "charge_not_found", "charge doesn't exist")
			return
		}
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, charge)
}

func CreateOverOccupancyCharge(c *gin.Context) {
	var p chargePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if p.ExcessGuests <= 0 || p.ExtraCharge < 0 {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", "excessGuests must be positive and extraCharge non-negative")
		return
	}

	charge := models.OverOccupancyCharge{ExcessGuests: p.ExcessGuests, ExtraCharge: p.ExtraCharge}
	if err := config.DB.Create(&charge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "Duplicate entry") {
			utils.JSONError(c, http.StatusConflict, "duplicate_threshold", "a charge with this excessGuests threshold already exists")
			return
		}
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, charge)
}

func UpdateOverOccupancyCharge(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var charge models.OverOccupancyCharge
	if err := config.DB.First(&charge, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "charge_not_found", "charge doesn't exist")
			return
		}
		utils.RenderError(c, err)
		return
	}

	var p chargePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	charge.ExcessGuests = p.ExcessGuests
	charge.ExtraCharge = p.ExtraCharge
	if err := config.DB.Save(&charge).Error; err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, charge)
}

func DeleteOverOccupancyCharge(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	res := config.DB.Delete(&models.OverOccupancyCharge{}, id)
	if res.Error != nil {
		utils.RenderError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "charge_not_found", "charge doesn't exist")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "charge deleted"})
}
