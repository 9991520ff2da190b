package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"melodia/internal/models/request_models"
	"melodia/internal/services"
	"melodia/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// Create godoc
// @Summary Create a new profile for the logged in user
// @Description Fails with 403 once the plan's account limit is reached
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body request_models.CreateProfileRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile [post]
func (p *ProfileController) Create(c *gin.Context) {
	var req request_models.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	email := c.GetString("email")

	result, err := p.profileService.Create(c.Request.Context(), email, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Profile created successfully")
}

// FindAll godoc
// @Summary Fetch all profiles of the logged in user
// @Tags Profiles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile [get]
func (p *ProfileController) FindAll(c *gin.Context) {
	email := c.GetString("email")

	result, err := p.profileService.FindAll(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Profiles fetched successfully")
}

// FindOne godoc
// @Summary Fetch one profile of the logged in user by id
// @Tags Profiles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/{id} [get]
func (p *ProfileController) FindOne(c *gin.Context) {
	email := c.GetString("email")

	result, err := p.profileService.FindOne(c.Request.Context(), email, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Profile fetched successfully")
}

// Update godoc
// @Summary Update the currently active profile
// @Description The target id must match the profile embedded in the token
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/{id} [patch]
func (p *ProfileController) Update(c *gin.Context) {
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	email := c.GetString("email")
	activeProfileID := c.GetString("profile_id")

	result, err := p.profileService.Update(c.Request.Context(), email, activeProfileID, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Profile updated successfully")
}

// Delete godoc
// @Summary Delete the currently active profile
// @Tags Profiles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/{id} [delete]
func (p *ProfileController) Delete(c *gin.Context) {
	email := c.GetString("email")
	activeProfileID := c.GetString("profile_id")

	if err := p.profileService.Delete(c.Request.Context(), email, activeProfileID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile deleted successfully")
}

// Favorite godoc
// @Summary Add a playlist to the active profile's favorites
// @Tags Profiles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/favorites/{id} [post]
func (p *ProfileController) Favorite(c *gin.Context) {
	email := c.GetString("email")
	activeProfileID := c.GetString("profile_id")

	if err := p.profileService.FavoritePlaylist(c.Request.Context(), email, activeProfileID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Playlist favorited successfully")
}

// Unfavorite godoc
// @Summary Remove a playlist from the active profile's favorites
// @Tags Profiles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/favorites/{id} [delete]
func (p *ProfileController) Unfavorite(c *gin.Context) {
	email := c.GetString("email")
	activeProfileID := c.GetString("profile_id")

	if err := p.profileService.UnfavoritePlaylist(c.Request.Context(), email, activeProfileID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Playlist unfavorited successfully")
}

// FindFavorites godoc
// @Summary List the active profile's favorite playlists
// @Tags Profiles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/favorites [get]
func (p *ProfileController) FindFavorites(c *gin.Context) {
	email := c.GetString("email")
	activeProfileID := c.GetString("profile_id")

	result, err := p.profileService.FindFavorites(c.Request.Context(), email, activeProfileID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Favorite playlists fetched successfully")
}
