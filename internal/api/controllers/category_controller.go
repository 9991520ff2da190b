package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"melodia/internal/models/request_models"
	"melodia/internal/services"
	"melodia/pkg/utils"
)

type CategoryController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryController(categoryService services.CategoryServiceInterface) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

func (ca *CategoryController) Create(c *gin.Context) {
	var req request_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := ca.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Category created successfully")
}

func (ca *CategoryController) FindAll(c *gin.Context) {
	result, err := ca.categoryService.GetAllCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Categories fetched successfully")
}

func (ca *CategoryController) FindOne(c *gin.Context) {
	result, err := ca.categoryService.GetCategoryById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Category fetched successfully")
}

func (ca *CategoryController) Update(c *gin.Context) {
	var req request_models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := ca.categoryService.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Category updated successfully")
}

func (ca *CategoryController) Delete(c *gin.Context) {
	if err := ca.categoryService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Category deleted successfully")
}
