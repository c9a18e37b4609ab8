package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/malik-shaik/DevHub/utils"
)

// ErrorHandlerMiddleware renders errors attached via c.Error. CustomErrors
// carry their own status and message; anything else becomes a bare 500 so
// no internal detail leaks.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if customErr, ok := err.(*utils.CustomError); ok {
				utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
				return
			}

			utils.ErrorResponse(c, http.StatusInternalServerError, "Server Error")
		}
	}
}
