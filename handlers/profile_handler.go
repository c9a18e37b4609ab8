package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/malik-shaik/DevHub/controllers"
)

// RegisterProfileRoutes sets up the profile routes. Listing and lookup by
// user id are public; everything else is gated.
func RegisterProfileRoutes(router *gin.RouterGroup, profileController *controllers.ProfileController, auth gin.HandlerFunc) {
	profileGroup := router.Group("/profile")
	{
		profileGroup.GET("", profileController.GetAllProfiles)
		profileGroup.GET("/user/:user_id", profileController.GetProfileByUser)

		profileGroup.GET("/me", auth, profileController.GetMyProfile)
		profileGroup.POST("", auth, profileController.CreateOrUpdateProfile)
		profileGroup.DELETE("", auth, profileController.DeleteProfile)
		profileGroup.PUT("/experience", auth, profileController.AddExperience)
		profileGroup.DELETE("/experience/:exp_id", auth, profileController.DeleteExperience)
		profileGroup.PUT("/education", auth, profileController.AddEducation)
		profileGroup.DELETE("/education/:edu_id", auth, profileController.DeleteEducation)
	}
}
