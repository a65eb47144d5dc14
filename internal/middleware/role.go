package middleware

import (
	"net/http"

	"github.com/chaiandgrill/pos-api/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireRole is a middleware that checks if the user has the required role.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrCodeUnauthorized, "User not authenticated"))
			c.Abort()
			return
		}

		role, exists := c.Get("userRole")
		if !exists {
			c.JSON(http.StatusForbidden, models.NewAPIError(models.ErrCodeForbidden, "User role not found in token"))
			c.Abort()
			return
		}

		userRole, ok := role.(string)
		if !ok || userRole != requiredRole {
			c.JSON(http.StatusForbidden, models.NewAPIError(models.ErrCodeForbidden, "Insufficient permissions"))
			c.Abort()
			return
		}

		c.Next()
	}
}
