package config_fx

import (
	"go.uber.org/fx"

	"melodia/pkg/config"
	"melodia/pkg/tokens"
)

var Module = fx.Provide(
	provideConfig, provideTokenMaker)

func provideConfig() config.Config {
	return config.Load()
}

func provideTokenMaker(cfg config.Config) *tokens.Maker {
	return tokens.NewMaker(cfg.JWTSecret, cfg.TokenTTL)
}
