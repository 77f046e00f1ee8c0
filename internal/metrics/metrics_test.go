package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizePath tests label cardinality control
func TestNormalizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "Root",
			path:     "/",
			expected: "/",
		},
		{
			name:     "Empty",
			path:     "",
			expected: "/",
		},
		{
			name:     "Pokemon lookup",
			path:     "/pokemon/pikachu",
			expected: "/pokemon/{name}",
		},
		{
			name:     "Translation with trailing slash",
			path:     "/pokemon/mewtwo/translation/",
			expected: "/pokemon/{name}/translation/",
		},
		{
			name:     "Translation without trailing slash",
			path:     "/pokemon/mewtwo/translation",
			expected: "/pokemon/{name}/translation/",
		},
		{
			name:     "Unknown path stays as is",
			path:     "/something/else",
			expected: "/something/else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, normalizePath(tt.path))
		})
	}
}

// TestShouldSkipTracking tests monitoring endpoint exclusion
func TestShouldSkipTracking(t *testing.T) {
	t.Parallel()

	assert.True(t, shouldSkipTracking("/health"))
	assert.True(t, shouldSkipTracking("/metrics"))
	assert.True(t, shouldSkipTracking("/swagger-ui"))
	assert.True(t, shouldSkipTracking("/api-docs/openapi.json"))
	assert.False(t, shouldSkipTracking("/pokemon/pikachu"))
}

// TestMetricsHandler tests the exposition endpoint output
func TestMetricsHandler(t *testing.T) {
	t.Parallel()

	m := New()
	m.PokemonRequestsTotal.Inc()
	m.PokemonRequestsTotal.Inc()
	m.TranslationsFailed.Inc()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/metrics", m.Handler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "pokemon_requests_total 2")
	assert.Contains(t, body, "translations_failed 1")
}

// TestMetricsMiddleware tests request tracking with normalized labels
func TestMetricsMiddleware(t *testing.T) {
	t.Parallel()

	m := New()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/pokemon/:name", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/metrics", m.Handler())

	for _, path := range []string{"/pokemon/pikachu", "/pokemon/mewtwo", "/health"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := w.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",path="/pokemon/{name}",status="200"} 2`)
	assert.NotContains(t, body, "pikachu", "raw names must not appear as labels")
	assert.NotContains(t, body, `path="/health"`, "monitoring endpoints are not tracked")
}

// TestNewMetricsIsolated tests that separate instances do not share counters
func TestNewMetricsIsolated(t *testing.T) {
	t.Parallel()

	first := New()
	second := New()

	first.PokemonRequestsTotal.Inc()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/metrics", second.Handler())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Contains(t, w.Body.String(), "pokemon_requests_total 0")
}
