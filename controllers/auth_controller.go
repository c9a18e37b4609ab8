package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/malik-shaik/DevHub/services"
	"github.com/malik-shaik/DevHub/utils"
)

type AuthController struct {
	AuthService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// Register handles POST /api/users. Validation errors are collected and
// returned together.
func (h *AuthController) Register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ErrorListResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if errs := utils.ValidateStruct(in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	token, err := h.AuthService.Register(c.Request.Context(), in)
	if err != nil {
		if customErr, ok := err.(*utils.CustomError); ok && customErr.StatusCode == http.StatusBadRequest {
			utils.ErrorListResponse(c, http.StatusBadRequest, customErr.Message)
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Login handles POST /api/auth. Unknown emails and wrong passwords get
// the same response body.
func (h *AuthController) Login(c *gin.Context) {
	var in services.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ErrorListResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if errs := utils.ValidateStruct(in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	token, err := h.AuthService.Login(c.Request.Context(), in)
	if err != nil {
		if customErr, ok := err.(*utils.CustomError); ok && customErr.StatusCode == http.StatusBadRequest {
			utils.ErrorListResponse(c, http.StatusBadRequest, customErr.Message)
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// CurrentUser handles GET /api/auth, returning the authenticated user
// without the password hash.
func (h *AuthController) CurrentUser(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	user, err := h.AuthService.CurrentUser(c.Request.Context(), userID.(string))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user)
}
