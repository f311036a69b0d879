package middleware

import (
	"net/http"

	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/gin-gonic/gin"
)

// RequireRole gates a route on the role claim set by AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := GetUserRoleFromContext(c)
		if !exists {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - role not found"))
			c.Abort()
			return
		}

		if userRole != role {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - "+role+" access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminMiddleware requires the admin role.
func AdminMiddleware() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}
