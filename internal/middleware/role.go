package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainUser "reservation-api/internal/domain/user"
	"reservation-api/pkg/utils"
)

// RoleMiddleware allows the request through only if the authenticated role
// matches one of allowedRoles. It assumes AuthMiddleware already ran.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.ErrorResponse(c, http.StatusForbidden, "Role not found in context")
			c.Abort()
			return
		}

		userRole := role.(string)

		for _, allowedRole := range allowedRoles {
			if userRole == allowedRole {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "Access denied")
		c.Abort()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RoleMiddleware(domainUser.RoleAdmin)
}
