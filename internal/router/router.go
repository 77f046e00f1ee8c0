// Package router wires the HTTP routes and global middleware.
package router

import (
	"time"

	"pokedex-api/internal/handler"
	"pokedex-api/internal/metrics"
	"pokedex-api/internal/middleware"
	"pokedex-api/internal/types"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// NewRouter creates the gin engine with all middleware and routes registered.
func NewRouter(
	serverHandler *handler.Server,
	configManager types.ConfigManager,
	appMetrics *metrics.Metrics,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Register global middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Logger(configManager.GetLogConfig()))
	router.Use(middleware.RateLimiter(configManager.GetPerformanceConfig()))
	router.Use(middleware.SecurityHeaders())
	router.Use(appMetrics.Middleware())

	startTime := time.Now()
	router.Use(func(c *gin.Context) {
		c.Set("serverStartTime", startTime)
		c.Next()
	})

	registerSystemRoutes(router, serverHandler, appMetrics)
	registerAPIRoutes(router, serverHandler)
	registerDocsRoutes(router, serverHandler)

	return router
}

// registerSystemRoutes registers system-level routes
func registerSystemRoutes(router *gin.Engine, serverHandler *handler.Server, appMetrics *metrics.Metrics) {
	router.GET("/health", serverHandler.Health)
	router.GET("/metrics", appMetrics.Handler())
}

// registerAPIRoutes registers the Pokemon API routes
func registerAPIRoutes(router *gin.Engine, serverHandler *handler.Server) {
	pokemon := router.Group("/pokemon")
	{
		pokemon.GET("/:name", serverHandler.GetPokemon)
		pokemon.GET("/:name/translation/", serverHandler.GetPokemonTranslation)
	}
}

// registerDocsRoutes registers the API documentation routes
func registerDocsRoutes(router *gin.Engine, serverHandler *handler.Server) {
	docs := router.Group("", gzip.Gzip(gzip.DefaultCompression))
	{
		docs.GET("/api-docs/openapi.json", serverHandler.OpenAPISpec)
		docs.GET("/swagger-ui", serverHandler.SwaggerUI)
	}
}
