package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/malik-shaik/DevHub/services"
	"github.com/malik-shaik/DevHub/utils"
)

// TokenHeader is the request header carrying the auth token.
const TokenHeader = "x-auth-token"

// AuthMiddleware verifies the token header and puts the resolved user id
// into the context under "userId". Requests without a valid token never
// reach the handler.
func AuthMiddleware(tokenService *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "No token provided")
			c.Abort()
			return
		}

		userID, err := tokenService.Verify(token)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Token not valid")
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Next()
	}
}
