// controllers/auth_controller.go
package controllers

import (
	"net/http"
	"time"

	"hotel-booking-backend/config"
	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Users *services.UserService
	Cfg   config.App
}

func NewAuthController(users *services.UserService, cfg config.App) *AuthController {
	return &AuthController{Users: users, Cfg: cfg}
}

// Register (POST /api/auth/register) creates a Customer account.
func (ac *AuthController) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	user, err := ac.Users.Register(&req, models.RoleCustomer)
	if err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login (POST /api/auth/login) returns a bearer token.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	user, err := ac.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	ttl := time.Duration(ac.Cfg.JWTExpireMin) * time.Minute
	token, err := utils.CreateAccessToken(ac.Cfg.JWTSecret, user.ID, user.Role, ttl)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"token": token, "user": user})
}
