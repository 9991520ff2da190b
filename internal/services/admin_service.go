package services

import (
	"context"

	"melodia/internal/models/db_models"
	"melodia/internal/models/request_models"
	"melodia/internal/models/response_models"
	"melodia/internal/repositories"
	"melodia/pkg/utils"
)

type AdminServiceInterface interface {
	CreateAdmin(ctx context.Context, request request_models.CreateAdminRequest) (*response_models.AdminView, error)
	GetAdminByEmail(ctx context.Context, email string) (*response_models.AdminView, error)
}

type AdminService struct {
	adminRepo    repositories.AdminRepository
	categoryRepo repositories.CategoryRepository
}

func NewAdminService(
	adminRepo repositories.AdminRepository,
	categoryRepo repositories.CategoryRepository,
) AdminServiceInterface {
	return &AdminService{
		adminRepo:    adminRepo,
		categoryRepo: categoryRepo,
	}
}

func (a *AdminService) CreateAdmin(ctx context.Context, request request_models.CreateAdminRequest) (*response_models.AdminView, error) {

	if err := utils.VerifyPasswordConfirmation(request.Password, request.ConfirmPassword); err != nil {
		return nil, err
	}

	existing, err := a.adminRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	category, err := a.categoryRepo.FindByName(ctx, "admin")
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrRecordNotFound
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newAdmin := &db_models.Admin{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Image:        request.Image,
		CPF:          request.CPF,
		CategoryID:   category.ID,
	}

	if err := a.adminRepo.Insert(ctx, newAdmin); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AdminView{
		ID:       newAdmin.ID,
		Name:     newAdmin.Name,
		Email:    newAdmin.Email,
		Category: category.Name,
	}, nil
}

func (a *AdminService) GetAdminByEmail(ctx context.Context, email string) (*response_models.AdminView, error) {

	admin, err := a.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if admin == nil {
		return nil, utils.ErrRecordNotFound
	}

	view := toAdminView(admin)
	return &view, nil
}
