package controllers

import (
	"net/http"
	"strconv"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	Ratings *services.RatingService
}

func NewRatingController(svc *services.RatingService) *RatingController {
	return &RatingController{Ratings: svc}
}

func (rc *RatingController) CreateRating(c *gin.Context) {
	var req services.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	rating, err := rc.Ratings.Create(actorFrom(c), &req)
	if err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rating)
}

func (rc *RatingController) GetRatings(c *gin.Context) {
	var filter services.RatingFilter
	if v := c.Query("score"); v != "" {
		score, err := strconv.Atoi(v)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "validation_error", "score must be an integer")
			return
		}
		filter.Score = score
	}
	if v := c.Query("roomTypeId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "validation_error", "roomTypeId must be an integer")
			return
		}
		filter.RoomTypeID = uint(id)
	}
	if v := c.Query("bookingId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "validation_error", "bookingId must be an integer")
			return
		}
		filter.BookingID = uint(id)
	}

	ratings, err := rc.Ratings.List(filter)
	if err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ratings)
}

func (rc *RatingController) GetRatingByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	rating, err := rc.Ratings.GetByID(id)
	if err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rating)
}

type updateRatingRequest struct {
	Score    *int    `json:"score"`
	Feedback *string `json:"feedback"`
}

func (rc *RatingController) UpdateRating(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req updateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	rating, err := rc.Ratings.Update(actorFrom(c), id, req.Score, req.Feedback)
	if err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rating)
}

func (rc *RatingController) DeleteRating(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := rc.Ratings.Delete(actorFrom(c), id); err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "rating deleted"})
}
