package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"melodia/internal/infra"
	"melodia/pkg/config"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
