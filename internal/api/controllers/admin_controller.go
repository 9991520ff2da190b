package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"melodia/internal/models/request_models"
	"melodia/internal/services"
	"melodia/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

func (a *AdminController) Create(c *gin.Context) {
	var req request_models.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.adminService.CreateAdmin(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Admin created successfully")
}

func (a *AdminController) Me(c *gin.Context) {
	email := c.GetString("email")

	result, err := a.adminService.GetAdminByEmail(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Admin fetched successfully")
}
