package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"hotel-booking-backend/config"
	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetRooms (GET /api/rooms)
func GetRooms(c *gin.Context) {
	var rooms []models.Room
	q := config.DB.Preload("RoomType")
	if v := c.Query("active"); v != "" {
		q = q.Where("active = ?", v == "true")
	}
	if err := q.Find(&rooms).Error; err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func GetRoomByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var room models.Room
	if err := config.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room_not_found", "room doesn't exist")
			return
		}
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// CreateRoom (POST /api/rooms)
func CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", "roomNumber is required")
		return
	}

	var rt models.RoomType
	if err := config.DB.First(&rt, room.RoomTypeID).Error; err != nil {
		log.Printf("invalid roomTypeId provided: %v", room.RoomTypeID)
		utils.JSONError(c, http.StatusBadRequest, "validation_error", "invalid roomTypeId provided")
		return
	}

	room.Active = true
	if err := config.DB.Create(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "Duplicate entry") {
			utils.JSONError(c, http.StatusConflict, "duplicate_room_number", "room number already exists")
			return
		}
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

type updateRoomRequest struct {
	RoomTypeID  *uint   `json:"roomTypeId"`
	RoomNumber  *string `json:"roomNumber"`
	Active      *bool   `json:"active"`
	Description *string `json:"description"`
}

// UpdateRoom (PUT /api/rooms/:id)
func UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room_not_found", "room doesn't exist")
			return
		}
		utils.RenderError(c, err)
		return
	}

	var req updateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.RoomTypeID != nil {
		var rt models.RoomType
		if err := config.DB.First(&rt, *req.RoomTypeID).Error; err != nil {
			utils.JSONError(c, http.StatusBadRequest, "validation_error", "invalid roomTypeId provided")
			return
		}
		updates["room_type_id"] = *req.RoomTypeID
	}
	if req.RoomNumber != nil {
		n := strings.TrimSpace(*req.RoomNumber)
		if n == "" {
			utils.JSONError(c, http.StatusBadRequest, "validation_error", "roomNumber must not be empty")
			return
		}
		updates["room_number"] = n
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if err := config.DB.Model(&room).Updates(updates).Error; err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DeleteRoom soft-disables: rooms referenced by bookings are never removed.
func DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	res := config.DB.Model(&models.Room{}).Where("id = ?", id).Update("active", false)
	if res.Error != nil {
		utils.RenderError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "room_not_found", "room doesn't exist")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room disabled"})
}
