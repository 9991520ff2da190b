package auth_fx

import (
	"go.uber.org/fx"

	"melodia/internal/repositories"
	"melodia/internal/services"
	"melodia/pkg/tokens"
)

var Module = fx.Provide(
	provideAuthService)

func provideAuthService(
	userRepo repositories.UserRepository,
	adminRepo repositories.AdminRepository,
	artistRepo repositories.ArtistRepository,
	profileRepo repositories.ProfileRepository,
	tokenMaker *tokens.Maker,
) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, adminRepo, artistRepo, profileRepo, tokenMaker)
}
