package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse writes the flat error body used across all handlers.
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// SuccessResponse writes a message plus optional payload.
func SuccessResponse(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}
