// Package container provides the dependency injection container for the application.
package container

import (
	"os"

	"pokedex-api/internal/app"
	"pokedex-api/internal/config"
	"pokedex-api/internal/handler"
	"pokedex-api/internal/httpclient"
	"pokedex-api/internal/metrics"
	"pokedex-api/internal/pokeapi"
	"pokedex-api/internal/router"
	"pokedex-api/internal/translator"
	"pokedex-api/internal/types"

	"go.uber.org/dig"
)

// BuildContainer creates and configures the dependency injection container.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		func() (types.ConfigManager, error) {
			return config.NewManager(os.Args[1:])
		},
		metrics.New,
		httpclient.NewManager,
		pokeapi.NewClient,
		func(client *pokeapi.Client) pokeapi.Finder {
			return pokeapi.NewService(client)
		},
		func(configManager types.ConfigManager, clientManager *httpclient.Manager) translator.API {
			return translator.NewClient(configManager, clientManager)
		},
		translator.NewOrchestrator,
		handler.NewServer,
		router.NewRouter,
		app.NewApp,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}
