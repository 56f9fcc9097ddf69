package utils

import (
	"errors"
	"log"
	"net/http"

	"hotel-booking-backend/services"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, reason string, message string) {
	c.JSON(code, gin.H{"success": false, "error": gin.H{"code": reason, "message": message}})
}

// RenderError maps a service error onto the response envelope. Anything that
// is not an AppError is an infrastructure failure: logged, generic 500.
func RenderError(c *gin.Context, err error) {
	var appErr *services.AppError
	if errors.As(err, &appErr) {
		JSONError(c, appErr.Status, appErr.Code, appErr.Message)
		return
	}
	log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	JSONError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
}
