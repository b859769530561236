package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"reservation-api/internal/logger"
)

// RecoveryMiddleware converts panics into the generic error body
// {status, statusCode, message, stack?}. The stack is included only
// outside production.
func RecoveryMiddleware(environment string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				logger.Error("Recovered from panic",
					zap.String("request_id", GetRequestID(c)),
					zap.Any("panic", r),
					zap.String("stack", stack),
				)

				body := gin.H{
					"status":     "error",
					"statusCode": http.StatusInternalServerError,
					"message":    "An unexpected error occurred",
				}
				if environment != "production" {
					body["stack"] = stack
				}

				c.AbortWithStatusJSON(http.StatusInternalServerError, body)
			}
		}()

		c.Next()
	}
}
