package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"melodia/cmd/fx/admin_fx"
	"melodia/cmd/fx/artist_fx"
	"melodia/cmd/fx/auth_fx"
	"melodia/cmd/fx/catalog_fx"
	"melodia/cmd/fx/config_fx"
	"melodia/cmd/fx/controllers_fx"
	"melodia/cmd/fx/db_fx"
	"melodia/cmd/fx/plan_fx"
	"melodia/cmd/fx/profile_fx"
	"melodia/cmd/fx/reference_fx"
	"melodia/cmd/fx/user_fx"
	"melodia/internal/api/controllers"
	"melodia/internal/repositories"
	"melodia/pkg/config"
	"melodia/pkg/middleware"
	"melodia/pkg/tokens"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		user_fx.Module,
		admin_fx.Module,
		artist_fx.Module,
		profile_fx.Module,
		plan_fx.Module,
		reference_fx.Module,
		catalog_fx.Module,
		auth_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config) {
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}

type RouterDeps struct {
	fx.In

	TokenMaker *tokens.Maker
	AdminRepo  repositories.AdminRepository
	ArtistRepo repositories.ArtistRepository

	Auth     *controllers.AuthController
	Profile  *controllers.ProfileController
	User     *controllers.UserController
	Admin    *controllers.AdminController
	Artist   *controllers.ArtistController
	Plan     *controllers.PlanController
	Country  *controllers.CountryController
	Category *controllers.CategoryController
	Catalog  *controllers.CatalogController
}

func ProvideRouter(deps RouterDeps) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, deps)

	return r
}

func RegisterRoutes(r *gin.Engine, deps RouterDeps) {

	authRequired := middleware.JWTAuthMiddleware(deps.TokenMaker)
	adminOnly := middleware.RequirePrincipal(deps.AdminRepo)
	artistOnly := middleware.RequirePrincipal(deps.ArtistRepo)

	r.POST("/login", deps.Auth.LoginUser)
	r.POST("/login/admin", deps.Auth.LoginAdmin)
	r.POST("/login/artist", deps.Auth.LoginArtist)
	r.POST("/login/profile", authRequired, deps.Auth.ActivateProfile)

	profileGroup := r.Group("/profile", authRequired)
	profileGroup.POST("", deps.Profile.Create)
	profileGroup.GET("", deps.Profile.FindAll)
	profileGroup.GET("/favorites", deps.Profile.FindFavorites)
	profileGroup.POST("/favorites/:id", deps.Profile.Favorite)
	profileGroup.DELETE("/favorites/:id", deps.Profile.Unfavorite)
	profileGroup.GET("/:id", deps.Profile.FindOne)
	profileGroup.PATCH("/:id", deps.Profile.Update)
	profileGroup.DELETE("/:id", deps.Profile.Delete)

	r.POST("/user", deps.User.Register)
	userGroup := r.Group("/user", authRequired)
	userGroup.GET("", deps.User.Me)
	userGroup.PATCH("", deps.User.Update)
	userGroup.DELETE("", deps.User.Delete)

	adminGroup := r.Group("/admin", authRequired, adminOnly)
	adminGroup.POST("", deps.Admin.Create)
	adminGroup.GET("", deps.Admin.Me)

	r.GET("/artist/all", deps.Artist.FindAll)
	r.GET("/artist/:id", deps.Artist.FindOne)
	artistAdmin := r.Group("/artist", authRequired, adminOnly)
	artistAdmin.POST("", deps.Artist.Create)
	artistAdmin.PATCH("/update/:id", deps.Artist.Update)
	artistAdmin.DELETE("/delete/:id", deps.Artist.Delete)

	r.GET("/userplan/all", deps.Plan.FindAll)
	r.GET("/userplan/:id", deps.Plan.FindOne)
	r.POST("/userplan", authRequired, adminOnly, deps.Plan.Create)

	r.GET("/country/all", deps.Country.FindAll)
	r.GET("/country/:id", deps.Country.FindOne)
	countryAdmin := r.Group("/country", authRequired, adminOnly)
	countryAdmin.POST("/create", deps.Country.Create)
	countryAdmin.PATCH("/update/:id", deps.Country.Update)
	countryAdmin.DELETE("/delete/:id", deps.Country.Delete)

	r.GET("/category/all", deps.Category.FindAll)
	r.GET("/category/:id", deps.Category.FindOne)
	categoryAdmin := r.Group("/category", authRequired, adminOnly)
	categoryAdmin.POST("/create", deps.Category.Create)
	categoryAdmin.PATCH("/update/:id", deps.Category.Update)
	categoryAdmin.DELETE("/delete/:id", deps.Category.Delete)

	r.GET("/album/all", deps.Catalog.FindAllAlbums)
	r.GET("/album/:id", deps.Catalog.FindOneAlbum)
	r.POST("/album", authRequired, artistOnly, deps.Catalog.CreateAlbum)

	r.GET("/music/all", deps.Catalog.FindAllSongs)
	r.GET("/music/:id", deps.Catalog.FindOneSong)
	r.POST("/music", authRequired, artistOnly, deps.Catalog.CreateSong)
}
