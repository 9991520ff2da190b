package admin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"melodia/internal/repositories"
	"melodia/internal/services"
)

var Module = fx.Provide(
	provideAdminService, provideAdminRepo)

func provideAdminRepo(db *gorm.DB) repositories.AdminRepository {
	return repositories.NewAdminRepository(db)
}

func provideAdminService(
	adminRepo repositories.AdminRepository,
	categoryRepo repositories.CategoryRepository,
) services.AdminServiceInterface {
	return services.NewAdminService(adminRepo, categoryRepo)
}
