package services

import (
	"context"

	"melodia/internal/models/db_models"
	"melodia/internal/models/request_models"
	"melodia/internal/models/response_models"
	"melodia/internal/repositories"
	"melodia/pkg/utils"
)

type UserServiceInterface interface {
	CreateUser(ctx context.Context, request request_models.CreateUserRequest) (*response_models.UserView, error)
	GetUserByEmail(ctx context.Context, email string) (*response_models.UserView, error)
	UpdateUser(ctx context.Context, email string, request request_models.UpdateUserRequest) (*response_models.UserView, error)
	DeleteUser(ctx context.Context, email string) error
}

type UserService struct {
	userRepo     repositories.UserRepository
	planRepo     repositories.IPlanRepository
	categoryRepo repositories.CategoryRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	planRepo repositories.IPlanRepository,
	categoryRepo repositories.CategoryRepository,
) UserServiceInterface {
	return &UserService{
		userRepo:     userRepo,
		planRepo:     planRepo,
		categoryRepo: categoryRepo,
	}
}

func (u *UserService) CreateUser(ctx context.Context, request request_models.CreateUserRequest) (*response_models.UserView, error) {

	if err := utils.VerifyPasswordConfirmation(request.Password, request.ConfirmPassword); err != nil {
		return nil, err
	}

	existing, err := u.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	plan, err := u.planRepo.GetPlanInfoById(ctx, request.PlanID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrRecordNotFound
	}

	category, err := u.categoryRepo.FindByName(ctx, "user")
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

	planID := plan.ID
	newUser := &db_models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Image:        request.Image,
		CPF:          request.CPF,
		CategoryID:   category.ID,
		PlanID:       &planID,
	}

	if err := u.userRepo.Insert(ctx, newUser); err != nil {
		return nil, utils.ErrDatabaseError
	}

	planView := toPlanView(plan)
	return &response_models.UserView{
		ID:       newUser.ID,
		Name:     newUser.Name,
		Email:    newUser.Email,
		Image:    newUser.Image,
		Category: category.Name,
		Plan:     &planView,
	}, nil
}

func (u *UserService) GetUserByEmail(ctx context.Context, email string) (*response_models.UserView, error) {

	user, err := u.userRepo.FindByEmailWithPlanAndProfiles(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrRecordNotFound
	}

	view := toUserView(user)
	return &view, nil
}

func (u *UserService) UpdateUser(ctx context.Context, email string, request request_models.UpdateUserRequest) (*response_models.UserView, error) {

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrRecordNotFound
	}

	if request.Password != "" {
		if err := utils.VerifyPasswordConfirmation(request.Password, request.ConfirmPassword); err != nil {
			return nil, err
		}
		hashedPassword, err := utils.HashPassword(request.Password)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		user.PasswordHash = hashedPassword
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.Image != "" {
		user.Image = request.Image
	}
	if request.PlanID != "" {
		plan, err := u.planRepo.GetPlanInfoById(ctx, request.PlanID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if plan == nil {
			return nil, utils.ErrRecordNotFound
		}
		planID := plan.ID
		user.PlanID = &planID
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	view := toUserView(user)
	return &view, nil
}

// DeleteUser removes the account; owned profiles go with it.
func (u *UserService) DeleteUser(ctx context.Context, email string) error {

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrRecordNotFound
	}

	if err := u.userRepo.Delete(ctx, user.ID.String()); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
