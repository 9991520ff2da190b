package artist_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"melodia/internal/repositories"
	"melodia/internal/services"
)

var Module = fx.Provide(
	provideArtistService, provideArtistRepo)

func provideArtistRepo(db *gorm.DB) repositories.ArtistRepository {
	return repositories.NewArtistRepository(db)
}

func provideArtistService(
	artistRepo repositories.ArtistRepository,
	countryRepo repositories.CountryRepository,
	categoryRepo repositories.CategoryRepository,
) services.ArtistServiceInterface {
	return services.NewArtistService(artistRepo, countryRepo, categoryRepo)
}
