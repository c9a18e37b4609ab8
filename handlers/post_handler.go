package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/malik-shaik/DevHub/controllers"
)

// RegisterPostRoutes sets up the post routes; all of them are gated.
func RegisterPostRoutes(router *gin.RouterGroup, postController *controllers.PostController, auth gin.HandlerFunc) {
	postGroup := router.Group("/posts", auth)
	{
		postGroup.POST("", postController.CreatePost)
		postGroup.GET("", postController.GetAllPosts)
		postGroup.GET("/:id", postController.GetPostByID)
		postGroup.DELETE("/:id", postController.DeletePost)
		postGroup.PUT("/like/:id", postController.LikePost)
		postGroup.PUT("/unlike/:id", postController.UnlikePost)
	}
}
