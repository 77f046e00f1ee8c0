package container

import (
	"os"
	"testing"

	"pokedex-api/internal/app"
	"pokedex-api/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnv sets required environment variables and strips test flags
func setupTestEnv(t testing.TB) {
	t.Helper()
	t.Setenv("POKEAPI_HOST", "pokeapi.co")
	t.Setenv("FUN_TRANSLATIONS_HOST", "api.funtranslations.com")

	// The config manager parses os.Args, which carries go test flags here
	oldArgs := os.Args
	os.Args = []string{"pokedex-api"}
	t.Cleanup(func() { os.Args = oldArgs })
}

// TestBuildContainer tests container creation
func TestBuildContainer(t *testing.T) {
	setupTestEnv(t)

	container, err := BuildContainer()
	require.NoError(t, err)
	require.NotNil(t, container)
}

// TestBuildContainer_ConfigManagerResolution tests config manager resolution
func TestBuildContainer_ConfigManagerResolution(t *testing.T) {
	setupTestEnv(t)

	container, err := BuildContainer()
	require.NoError(t, err)

	err = container.Invoke(func(cm types.ConfigManager) {
		assert.NotNil(t, cm)
		assert.Equal(t, "pokeapi.co", cm.GetPokeAPIConfig().Host)
	})
	require.NoError(t, err)
}

// TestBuildContainer_App tests that the full application graph resolves
func TestBuildContainer_App(t *testing.T) {
	setupTestEnv(t)

	container, err := BuildContainer()
	require.NoError(t, err)

	// The OpenAPI document is provided by main at startup
	require.NoError(t, container.Provide(func() []byte { return []byte("{}") }))

	err = container.Invoke(func(application *app.App) {
		assert.NotNil(t, application)
	})
	require.NoError(t, err)
}
