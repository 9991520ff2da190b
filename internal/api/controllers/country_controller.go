package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"melodia/internal/models/request_models"
	"melodia/internal/services"
	"melodia/pkg/utils"
)

type CountryController struct {
	countryService services.CountryServiceInterface
}

func NewCountryController(countryService services.CountryServiceInterface) *CountryController {
	return &CountryController{
		countryService: countryService,
	}
}

func (co *CountryController) Create(c *gin.Context) {
	var req request_models.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := co.countryService.CreateCountry(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Country created successfully")
}

func (co *CountryController) FindAll(c *gin.Context) {
	result, err := co.countryService.GetAllCountries(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Countries fetched successfully")
}

func (co *CountryController) FindOne(c *gin.Context) {
	result, err := co.countryService.GetCountryById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Country fetched successfully")
}

func (co *CountryController) Update(c *gin.Context) {
	var req request_models.UpdateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := co.countryService.UpdateCountry(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Country updated successfully")
}

func (co *CountryController) Delete(c *gin.Context) {
	if err := co.countryService.DeleteCountry(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Country deleted successfully")
}
