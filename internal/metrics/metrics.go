// Package metrics provides Prometheus counters and request tracking middleware.
package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all application counters on a private registry so it can be
// injected as a collaborator instead of living in global state.
type Metrics struct {
	registry *prometheus.Registry

	PokemonRequestsTotal    prometheus.Counter
	PokemonRequestsFound    prometheus.Counter
	PokemonRequestsNotFound prometheus.Counter
	TranslationsTotal       prometheus.Counter
	TranslationsSucceeded   prometheus.Counter
	TranslationsFailed      prometheus.Counter
	ServiceUnavailable      prometheus.Counter
	RateLimited             prometheus.Counter

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New creates a Metrics collaborator with all counters registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		PokemonRequestsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "pokemon_requests_total",
			Help: "Total requests to get Pokemon",
		}),
		PokemonRequestsFound: factory.NewCounter(prometheus.CounterOpts{
			Name: "pokemon_requests_found",
			Help: "Pokemon requests that returned a result",
		}),
		PokemonRequestsNotFound: factory.NewCounter(prometheus.CounterOpts{
			Name: "pokemon_requests_not_found",
			Help: "Pokemon requests that returned 404",
		}),
		TranslationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "translations_total",
			Help: "Total translation requests",
		}),
		TranslationsSucceeded: factory.NewCounter(prometheus.CounterOpts{
			Name: "translations_succeeded",
			Help: "Successful translations",
		}),
		TranslationsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "translations_failed",
			Help: "Failed translation requests",
		}),
		ServiceUnavailable: factory.NewCounter(prometheus.CounterOpts{
			Name: "service_unavailable_errors_total",
			Help: "Total service unavailable errors (503)",
		}),
		RateLimited: factory.NewCounter(prometheus.CounterOpts{
			Name: "rate_limited_errors_total",
			Help: "Total rate limited errors (429)",
		}),
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP request duration in seconds",
		}, []string{"method", "path"}),
	}
}

// Handler returns the /metrics endpoint handler in Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

// Middleware tracks request counts and durations per normalized path.
// Monitoring and documentation endpoints are excluded.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if shouldSkipTracking(path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		method := c.Request.Method
		normalized := normalizePath(path)
		status := strconv.Itoa(c.Writer.Status())

		m.httpRequestsTotal.WithLabelValues(method, normalized, status).Inc()
		m.httpRequestDuration.WithLabelValues(method, normalized).Observe(time.Since(start).Seconds())
	}
}

// shouldSkipTracking reports whether the path is an internal endpoint that
// must not be tracked (the metrics endpoint would otherwise track itself).
func shouldSkipTracking(path string) bool {
	if path == "/health" || path == "/metrics" {
		return true
	}
	return strings.HasPrefix(path, "/swagger-ui") || strings.HasPrefix(path, "/api-docs")
}

// normalizePath collapses dynamic path segments to placeholders so Pokemon
// names do not explode the metric label cardinality.
func normalizePath(path string) string {
	segments := strings.Split(path, "/")

	switch {
	case path == "" || path == "/":
		return "/"
	case len(segments) == 3 && segments[1] == "pokemon":
		return "/pokemon/{name}"
	case (len(segments) == 4 || len(segments) == 5) && segments[1] == "pokemon" && segments[3] == "translation":
		return "/pokemon/{name}/translation/"
	default:
		return path
	}
}
