package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-booking-backend/config"
	"hotel-booking-backend/models"
	"hotel-booking-backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A staff account created through the admin endpoint must be schedulable.
func TestCreateStaffThenSchedule(t *testing.T) {
	r := newTestRouter(t)
	uc := NewUserController(services.NewUserService(config.DB))
	r.POST("/staffs", uc.CreateStaff)
	r.POST("/shifts", CreateShift)
	r.POST("/schedules", CreateSchedule)

	do := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := do("/staffs", `{"email":"desk@example.com","password":"supersecret","fullName":"Desk Staff","gender":"female","salary":22000}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data models.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.RoleStaff, created.Data.Role)

	w = do("/shifts", `{"shiftName":"Morning","startTime":"2026-09-01T06:00:00Z","endTime":"2026-09-01T14:00:00Z"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var shift struct {
		Data models.Shift `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &shift))

	w = do("/schedules", fmt.Sprintf(`{"userId":%d,"shiftIds":[%d]}`, created.Data.ID, shift.Data.ID))
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Customers stay unschedulable.
	customer, err := models.NewUser("guest@example.com", "supersecret", "Guest", "male", models.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, config.DB.Create(customer).Error)

	w = do("/schedules", fmt.Sprintf(`{"userId":%d,"shiftIds":[%d]}`, customer.ID, shift.Data.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "user_not_found")
}
