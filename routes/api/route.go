package route

import (
	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"github.com/malik-shaik/DevHub/config/environment"
	"github.com/malik-shaik/DevHub/controllers"
	"github.com/malik-shaik/DevHub/handlers"
	"github.com/malik-shaik/DevHub/middleware"
	"github.com/malik-shaik/DevHub/services"
	"github.com/malik-shaik/DevHub/store"
)

// RegisterRoutes wires stores, services and controllers and attaches all
// API routes under /api.
func RegisterRoutes(router *gin.Engine, cfg *environment.Config, client *firestore.Client) {
	userStore := store.NewUserStore(client)
	postStore := store.NewPostStore(client)
	profileStore := store.NewProfileStore(client)

	tokenService := services.NewTokenService(cfg)
	authService := services.NewAuthService(userStore, tokenService)
	postService := services.NewPostService(postStore, userStore)
	profileService := services.NewProfileService(profileStore)

	authController := controllers.NewAuthController(authService)
	postController := controllers.NewPostController(postService)
	profileController := controllers.NewProfileController(profileService)

	auth := middleware.AuthMiddleware(tokenService)

	apiRoutes := router.Group("/api")
	{
		handlers.RegisterAuthRoutes(apiRoutes, authController, auth)
		handlers.RegisterPostRoutes(apiRoutes, postController, auth)
		handlers.RegisterProfileRoutes(apiRoutes, profileController, auth)
	}
}
