package controllers_fx

import (
	"go.uber.org/fx"
	"melodia/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewArtistController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewCountryController),
	fx.Provide(controllers.NewCategoryController),
	fx.Provide(controllers.NewCatalogController))
