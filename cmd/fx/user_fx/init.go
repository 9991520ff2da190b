package user_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"melodia/internal/repositories"
	"melodia/internal/services"
)

var Module = fx.Provide(
	provideUserService, provideUserRepo)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideUserService(
	userRepo repositories.UserRepository,
	planRepo repositories.IPlanRepository,
	categoryRepo repositories.CategoryRepository,
) services.UserServiceInterface {
	return services.NewUserService(userRepo, planRepo, categoryRepo)
}
