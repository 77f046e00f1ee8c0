// Package handler contains the HTTP handlers for the API surface.
package handler

import (
	"context"

	"pokedex-api/internal/metrics"
	"pokedex-api/internal/pokeapi"
	"pokedex-api/internal/translator"
)

// TranslationOrchestrator applies a translation style with graceful degradation.
type TranslationOrchestrator interface {
	Translate(ctx context.Context, style translator.Style, text string) translator.Outcome
}

// Server holds the handler dependencies.
type Server struct {
	pokemonFinder pokeapi.Finder
	orchestrator  TranslationOrchestrator
	metrics       *metrics.Metrics
	openAPISpec   []byte
}

// NewServer creates the handler server.
func NewServer(
	pokemonFinder pokeapi.Finder,
	orchestrator *translator.Orchestrator,
	appMetrics *metrics.Metrics,
	openAPISpec []byte,
) *Server {
	return &Server{
		pokemonFinder: pokemonFinder,
		orchestrator:  orchestrator,
		metrics:       appMetrics,
		openAPISpec:   openAPISpec,
	}
}
