package profile_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"melodia/internal/repositories"
	"melodia/internal/services"
)

var Module = fx.Provide(
	provideProfileService, provideProfileRepo)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) services.ProfileServiceInterface {
	return services.NewProfileService(userRepo, profileRepo)
}
