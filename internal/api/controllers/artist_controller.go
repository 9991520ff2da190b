package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"melodia/internal/models/request_models"
	"melodia/internal/services"
	"melodia/pkg/utils"
)

type ArtistController struct {
	artistService services.ArtistServiceInterface
}

func NewArtistController(artistService services.ArtistServiceInterface) *ArtistController {
	return &ArtistController{
		artistService: artistService,
	}
}

// Create godoc
// @Summary Create a new artist - (ONLY ADMIN)
// @Tags Artists
// @Accept json
// @Produce json
// @Param request body request_models.CreateArtistRequest true "Artist payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /artist [post]
func (a *ArtistController) Create(c *gin.Context) {
	var req request_models.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.artistService.CreateArtist(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Artist created successfully")
}

func (a *ArtistController) FindAll(c *gin.Context) {
	result, err := a.artistService.GetAllArtists(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Artists fetched successfully")
}

func (a *ArtistController) FindOne(c *gin.Context) {
	result, err := a.artistService.GetArtistById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Artist fetched successfully")
}

func (a *ArtistController) Update(c *gin.Context) {
	var req request_models.UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.artistService.UpdateArtist(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Artist updated successfully")
}

func (a *ArtistController) Delete(c *gin.Context) {
	if err := a.artistService.DeleteArtist(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Artist deleted successfully")
}
