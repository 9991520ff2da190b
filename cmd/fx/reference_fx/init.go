package reference_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"melodia/internal/repositories"
	"melodia/internal/services"
)

var Module = fx.Provide(
	provideCountryRepo, provideCountryService,
	provideCategoryRepo, provideCategoryService)

func provideCountryRepo(db *gorm.DB) repositories.CountryRepository {
	return repositories.NewCountryRepository(db)
}

func provideCountryService(countryRepo repositories.CountryRepository) services.CountryServiceInterface {
	return services.NewCountryService(countryRepo)
}

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCategoryService(categoryRepo repositories.CategoryRepository) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo)
}
