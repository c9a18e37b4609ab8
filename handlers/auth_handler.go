package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/malik-shaik/DevHub/controllers"
)

// RegisterAuthRoutes sets up registration, login and the current-user
// lookup. Registration and login are public.
func RegisterAuthRoutes(router *gin.RouterGroup, authController *controllers.AuthController, auth gin.HandlerFunc) {
	router.POST("/users", authController.Register)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("", authController.Login)
		authGroup.GET("", auth, authController.CurrentUser)
	}
}
