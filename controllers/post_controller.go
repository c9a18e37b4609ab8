package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/malik-shaik/DevHub/services"
	"github.com/malik-shaik/DevHub/utils"
)

type PostController struct {
	PostService *services.PostService
}

func NewPostController(postService *services.PostService) *PostController {
	return &PostController{PostService: postService}
}

// CreatePost handles POST /api/posts.
func (h *PostController) CreatePost(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var in services.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ErrorListResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if errs := utils.ValidateStruct(in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	post, err := h.PostService.Create(c.Request.Context(), userID.(string), in)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// GetAllPosts handles GET /api/posts, newest first.
func (h *PostController) GetAllPosts(c *gin.Context) {
	posts, err := h.PostService.All(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPostByID handles GET /api/posts/:id.
func (h *PostController) GetPostByID(c *gin.Context) {
	post, err := h.PostService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost handles DELETE /api/posts/:id; only the owner may delete.
func (h *PostController) DeletePost(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	if err := h.PostService.Delete(c.Request.Context(), userID.(string), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Post removed"})
}

// LikePost handles PUT /api/posts/like/:id and returns the likes list.
func (h *PostController) LikePost(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	likes, err := h.PostService.Like(c.Request.Context(), userID.(string), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, likes)
}

// UnlikePost handles PUT /api/posts/unlike/:id and returns the likes list.
func (h *PostController) UnlikePost(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	likes, err := h.PostService.Unlike(c.Request.Context(), userID.(string), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, likes)
}
