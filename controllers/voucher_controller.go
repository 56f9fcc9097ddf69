package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"hotel-booking-backend/config"
	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type voucherPayload struct {
	Code               string    `json:"code" binding:"required"`
	Description        string    `json:"description"`
	DiscountPercentage int       `json:"discountPercentage"`
	MinSpend           int64     `json:"minSpend"`
	MaxDiscount        int64     `json:"maxDiscount"`
	StartDate          time.Time `json:"startDate" binding:"required"`
	EndDate            time.Time `json:"endDate" binding:"required"`
	LimitUse           int       `json:"limitUse" binding:"required"`
}

func (p *voucherPayload) validate() string {
	if strings.TrimSpace(p.Code) == "" {
		return "code is required"
	}
	if p.DiscountPercentage < 0 || p.DiscountPercentage > 100 {
		return "discountPercentage must be between 0 and 100"
	}
	if p.MinSpend < 0 || p.MaxDiscount < 0 {
		return "minSpend and maxDiscount must not be negative"
	}
	if !p.StartDate.Before(p.EndDate) {
		return "startDate must be before endDate"
	}
	if p.LimitUse <= 0 {
		return "limitUse must be positive"
	}
	return ""
}

func GetVouchers(c *gin.Context) {
	var vouchers []models.Voucher
	if err := config.DB.Preload("Usages").Find(&vouchers).Error; err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, vouchers)
}

func GetVoucherByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var v models.Voucher
	if err := config.DB.Preload("Usages").First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RenderError(c, services.ErrVoucherNotFound)
			return
		}
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, v)
}

func CreateVoucher(c *gin.Context) {
	var p voucherPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if msg := p.validate(); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", msg)
		return
	}

	v := models.Voucher{
		Code:               strings.TrimSpace(p.Code),
		Description:        p.Description,
		DiscountPercentage: p.DiscountPercentage,
		MinSpend:           p.MinSpend,
		MaxDiscount:        p.MaxDiscount,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		LimitUse:           p.LimitUse,
	}
	if err := config.DB.Create(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "Duplicate entry") {
			utils.JSONError(c, http.StatusConflict, "duplicate_voucher_code", "voucher code already exists")
			return
		}
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, v)
}

func UpdateVoucher(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var v models.Voucher
	if err := config.DB.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RenderError(c, services.ErrVoucherNotFound)
			return
		}
		utils.RenderError(c, err)
		return
	}

	var p voucherPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if msg := p.validate(); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", msg)
		return
	}

	v.Code = strings.TrimSpace(p.Code)
	v.Description = p.Description
	v.DiscountPercentage = p.DiscountPercentage
	v.MinSpend = p.MinSpend
	v.MaxDiscount = p.MaxDiscount
	v.StartDate = p.StartDate
	v.EndDate = p.EndDate
	v.LimitUse = p.LimitUse
	if err := config.DB.Save(&v).Error; err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, v)
}

func DeleteVoucher(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	res := config.DB.Delete(&models.Voucher{}, id)
	if res.Error != nil {
		utils.RenderError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RenderError(c, services.ErrVoucherNotFound)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "voucher deleted"})
}
