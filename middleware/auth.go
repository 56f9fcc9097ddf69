package middleware

import (
	"net/http"
	"strings"

	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

// RequireAuth parses the bearer token and stores userId/role in the context.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing_token", "authorization header is missing or malformed")
			c.Abort()
			return
		}
		claims, err := utils.ParseAccessToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid_token", "invalid or expired token")
			c.Abort()
			return
		}
		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRoles gates a route to the given roles. Runs after RequireAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		utils.JSONError(c, http.StatusForbidden, "forbidden", "you are not allowed to do this action")
		c.Abort()
	}
}
