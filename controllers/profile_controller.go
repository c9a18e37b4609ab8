package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/malik-shaik/DevHub/services"
	"github.com/malik-shaik/DevHub/utils"
)

type ProfileController struct {
	ProfileService *services.ProfileService
}

func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// GetMyProfile handles GET /api/profile/me. A user without a profile gets
// a single 400 response and nothing else.
func (h *ProfileController) GetMyProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	profile, err := h.ProfileService.Me(c.Request.Context(), userID.(string))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// CreateOrUpdateProfile handles POST /api/profile.
func (h *ProfileController) CreateOrUpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var in services.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ErrorListResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if errs := utils.ValidateStruct(in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	profile, err := h.ProfileService.CreateOrUpdate(c.Request.Context(), userID.(string), in)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetAllProfiles handles GET /api/profile (public).
func (h *ProfileController) GetAllProfiles(c *gin.Context) {
	profiles, err := h.ProfileService.All(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// GetProfileByUser handles GET /api/profile/user/:user_id (public).
func (h *ProfileController) GetProfileByUser(c *gin.Context) {
	profile, err := h.ProfileService.GetByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteProfile handles DELETE /api/profile: removes the profile and the
// owning user together.
func (h *ProfileController) DeleteProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	if err := h.ProfileService.Delete(c.Request.Context(), userID.(string)); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "User Deleted"})
}

// AddExperience handles PUT /api/profile/experience.
func (h *ProfileController) AddExperience(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var in services.ExperienceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ErrorListResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if errs := utils.ValidateStruct(in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	profile, err := h.ProfileService.AddExperience(c.Request.Context(), userID.(string), in)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteExperience handles DELETE /api/profile/experience/:exp_id.
// Unknown entry ids leave the profile unchanged.
func (h *ProfileController) DeleteExperience(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	profile, err := h.ProfileService.DeleteExperience(c.Request.Context(), userID.(string), c.Param("exp_id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// AddEducation handles PUT /api/profile/education.
func (h *ProfileController) AddEducation(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var in services.EducationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ErrorListResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if errs := utils.ValidateStruct(in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	profile, err := h.ProfileService.AddEducation(c.Request.Context(), userID.(string), in)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteEducation handles DELETE /api/profile/education/:edu_id.
func (h *ProfileController) DeleteEducation(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	profile, err := h.ProfileService.DeleteEducation(c.Request.Context(), userID.(string), c.Param("edu_id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
