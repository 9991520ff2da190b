package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"melodia/internal/repositories"
	"melodia/internal/services"
)

var Module = fx.Provide(
	provideCatalogService, provideCatalogRepo)

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepository {
	return repositories.NewCatalogRepository(db)
}

func provideCatalogService(
	catalogRepo repositories.CatalogRepository,
	artistRepo repositories.ArtistRepository,
) services.CatalogServiceInterface {
	return services.NewCatalogService(catalogRepo, artistRepo)
}
