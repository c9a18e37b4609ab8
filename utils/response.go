package utils

import "github.com/gin-gonic/gin"

// ErrorResponse writes the single-message error body used across the API.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"msg": message})
}

// ErrorListResponse writes the {"errors":[{"message":...}]} body used by
// the registration and login routes.
func ErrorListResponse(c *gin.Context, statusCode int, messages ...string) {
	errs := make([]FieldError, 0, len(messages))
	for _, m := range messages {
		errs = append(errs, FieldError{Message: m})
	}
	c.JSON(statusCode, gin.H{"errors": errs})
}
