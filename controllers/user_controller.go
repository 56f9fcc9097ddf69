// controllers/user_controller.go
package controllers

import (
	"net/http"

	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Users: svc}
}

var (
	staffRoles    = []string{models.RoleStaff}
	customerRoles = []string{models.RoleCustomer, models.RoleOnSiteCustomer}
)

func userFilterFrom(c *gin.Context, roles []string) services.UserFilter {
	filter := services.UserFilter{
		Roles:    roles,
		Email:    c.Query("email"),
		FullName: c.Query("fullName"),
		Gender:   c.Query("gender"),
	}
	if v := c.Query("status"); v != "" {
		status := v == "true"
		filter.Status = &status
	}
	return filter
}

// CreateStaff (POST /api/staffs) admin only.
func (uc *UserController) CreateStaff(c *gin.Context) {
	var req services.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	user, err := uc.Users.RegisterStaff(&req)
	if err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, user)
}

// GetStaffs (GET /api/staffs) admin only.
func (uc *UserController) GetStaffs(c *gin.Context) {
	users, err := uc.Users.List(userFilterFrom(c, staffRoles))
	if err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

// GetStaffByID (GET /api/staffs/:id) admin or the staff member themselves.
func (uc *UserController) GetStaffByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	user, err := uc.Users.Get(actorFrom(c), id, staffRoles)
	if err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// UpdateStaff (PUT /api/staffs/:id); salary changes require admin.
func (uc *UserController) UpdateStaff(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	user, err := uc.Users.Update(actorFrom(c), id, staffRoles, &req)
	if err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// GetCustomers (GET /api/customers) staff/admin only.
func (uc *UserController) GetCustomers(c *gin.Context) {
	users, err := uc.Users.List(userFilterFrom(c, customerRoles))
	if err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

// GetCustomerByID (GET /api/customers/:id) staff/admin or the customer.
func (uc *UserController) GetCustomerByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	user, err := uc.Users.Get(actorFrom(c), id, customerRoles)
	if err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// UpdateCustomer (PUT /api/customers/:id); point changes require staff/admin.
func (uc *UserController) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	user, err := uc.Users.Update(actorFrom(c), id, customerRoles, &req)
	if err != nil {
		utils.RenderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
