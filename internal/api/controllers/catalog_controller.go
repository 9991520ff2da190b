package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"melodia/internal/models/request_models"
	"melodia/internal/services"
	"melodia/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

func (ct *CatalogController) CreateAlbum(c *gin.Context) {
	var req request_models.CreateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := ct.catalogService.CreateAlbum(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Album created successfully")
}

func (ct *CatalogController) FindAllAlbums(c *gin.Context) {
	result, err := ct.catalogService.GetAllAlbums(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Albums fetched successfully")
}

func (ct *CatalogController) FindOneAlbum(c *gin.Context) {
	result, err := ct.catalogService.GetAlbumById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Album fetched successfully")
}

func (ct *CatalogController) CreateSong(c *gin.Context) {
	var req request_models.CreateSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := ct.catalogService.CreateSong(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Song created successfully")
}

func (ct *CatalogController) FindAllSongs(c *gin.Context) {
	result, err := ct.catalogService.GetAllSongs(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Songs fetched successfully")
}

func (ct *CatalogController) FindOneSong(c *gin.Context) {
	result, err := ct.catalogService.GetSongById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Song fetched successfully")
}
