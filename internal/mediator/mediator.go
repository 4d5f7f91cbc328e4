package mediator

import (
	"imgproxy/config"
	"imgproxy/internal/auth"
	"imgproxy/internal/clients/registry"
	"imgproxy/internal/services"
)

type App struct {
	api *services.Api
	// settings
	Config *config.Config
}

func NewApp(config config.Config) (*App, error) {

	verifier := auth.NewJWTVerifier(config.Auth)
	reg := registry.New(config.Providers)

	api := services.NewApi(reg, verifier, config.Api)

	return &App{
		api:    api,
		Config: &config,
	}, nil
}

func (a *App) Start() {
	a.api.Start()
}
