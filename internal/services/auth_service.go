package services

import (
	"context"

	"melodia/internal/models/db_models"
	"melodia/internal/models/request_models"
	"melodia/internal/models/response_models"
	"melodia/internal/repositories"
	"melodia/pkg/tokens"
	"melodia/pkg/utils"
)

// AuthServiceInterface is the authentication orchestrator: one login flow
// per principal variant plus profile activation. Unknown email and wrong
// password are indistinguishable from the outside.
type AuthServiceInterface interface {
	LoginUser(ctx context.Context, request request_models.LoginRequest) (*response_models.UserLoginResponse, error)
	LoginAdmin(ctx context.Context, request request_models.LoginRequest) (*response_models.AdminLoginResponse, error)
	LoginArtist(ctx context.Context, request request_models.LoginRequest) (*response_models.ArtistLoginResponse, error)
	ActivateProfile(ctx context.Context, email, profileID string) (*response_models.TokenResponse, error)
}

type AuthService struct {
	userRepo    repositories.UserRepository
	adminRepo   repositories.AdminRepository
	artistRepo  repositories.ArtistRepository
	profileRepo repositories.ProfileRepository
	tokenMaker  *tokens.Maker
}

func NewAuthService(
	userRepo repositories.UserRepository,
	adminRepo repositories.AdminRepository,
	artistRepo repositories.ArtistRepository,
	profileRepo repositories.ProfileRepository,
	tokenMaker *tokens.Maker,
) AuthServiceInterface {
	return &AuthService{
		userRepo:    userRepo,
		adminRepo:   adminRepo,
		artistRepo:  artistRepo,
		profileRepo: profileRepo,
		tokenMaker:  tokenMaker,
	}
}

func (a *AuthService) LoginUser(ctx context.Context, request request_models.LoginRequest) (*response_models.UserLoginResponse, error) {

	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if !utils.ComparePasswords(user.PasswordHash, request.Password) {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokenMaker.Issue(user.Email, "")
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.UserLoginResponse{
		Token: token,
		User:  toUserView(user),
	}, nil
}

func (a *AuthService) LoginAdmin(ctx context.Context, request request_models.LoginRequest) (*response_models.AdminLoginResponse, error) {

	admin, err := a.adminRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if admin == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if !utils.ComparePasswords(admin.PasswordHash, request.Password) {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokenMaker.Issue(admin.Email, "")
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AdminLoginResponse{
		Token: token,
		Admin: toAdminView(admin),
	}, nil
}

func (a *AuthService) LoginArtist(ctx context.Context, request request_models.LoginRequest) (*response_models.ArtistLoginResponse, error) {

	artist, err := a.artistRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if artist == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if !utils.ComparePasswords(artist.PasswordHash, request.Password) {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokenMaker.Issue(artist.Email, "")
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ArtistLoginResponse{
		Token:  token,
		Artist: toArtistView(artist),
	}, nil
}

// ActivateProfile re-resolves the user from the trusted claim email and only
// accepts a profile that user actually owns. A profile id owned by someone
// else is reported as not found.
func (a *AuthService) ActivateProfile(ctx context.Context, email, profileID string) (*response_models.TokenResponse, error) {

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if user == nil {
		return nil, utils.ErrInvalidToken
	}

	profile, err := a.profileRepo.FindOneInUser(ctx, user.ID.String(), profileID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	token, err := a.tokenMaker.Issue(user.Email, profile.ID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.TokenResponse{Token: token}, nil
}

func toUserView(user *db_models.User) response_models.UserView {
	view := response_models.UserView{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Image:    user.Image,
		Category: user.Category.Name,
	}
	if user.Plan != nil {
		plan := toPlanView(user.Plan)
		view.Plan = &plan
	}
	return view
}

func toAdminView(admin *db_models.Admin) response_models.AdminView {
	return response_models.AdminView{
		ID:       admin.ID,
		Name:     admin.Name,
		Email:    admin.Email,
		Category: admin.Category.Name,
	}
}

func toArtistView(artist *db_models.Artist) response_models.ArtistView {
	return response_models.ArtistView{
		ID:       artist.ID,
		Name:     artist.Name,
		Email:    artist.Email,
		Image:    artist.Image,
		About:    artist.About,
		Country:  artist.Country.Name,
		Category: artist.Category.Name,
	}
}
