package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"reservation-api/internal/config"
	"reservation-api/pkg/utils"
)

// AuthMiddleware validates the bearer token and attaches the decoded
// identity to the request context. A missing or malformed header is 401;
// a token that fails verification (bad signature, expiry, tampering) is
// 403. Role checks happen after this gate, not inside it.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Access denied: token missing")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Access denied: invalid token format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1], cfg.JWT.Secret)
		if err != nil {
			utils.ErrorResponse(c, http.StatusForbidden, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		c.Next()
	}
}
