// Package config provides configuration management for the application
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"pokedex-api/internal/types"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// hostPattern validates hostname format: alphanumeric labels separated by
// dots, each label 1-63 characters.
var hostPattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// Constants for default configuration
const (
	defaultPort                  = 5000
	defaultHost                  = "0.0.0.0"
	defaultLogLevel              = "info"
	defaultLogFormat             = "text"
	defaultUpstreamTimeout       = 10
	defaultConnectTimeout        = 5
	defaultMaxConcurrentRequests = 100
)

// Config represents the complete application configuration
type Config struct {
	Server          types.ServerConfig
	Log             types.LogConfig
	Performance     types.PerformanceConfig
	PokeAPI         types.UpstreamConfig
	FunTranslations types.UpstreamConfig
}

// Manager implements the ConfigManager interface
type Manager struct {
	config *Config
}

// NewManager creates a new configuration manager from environment variables
// overlaid with CLI flags (CLI wins). args are the raw CLI arguments without
// the program name.
func NewManager(args []string) (*Manager, error) {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	config := &Config{
		Server: types.ServerConfig{
			Port:                    parseInteger(os.Getenv("PORT"), defaultPort),
			Host:                    getEnvOrDefault("HOST", defaultHost),
			ReadTimeout:             parseInteger(os.Getenv("READ_TIMEOUT"), 60),
			WriteTimeout:            parseInteger(os.Getenv("WRITE_TIMEOUT"), 60),
			IdleTimeout:             parseInteger(os.Getenv("IDLE_TIMEOUT"), 120),
			GracefulShutdownTimeout: parseInteger(os.Getenv("GRACEFUL_SHUTDOWN_TIMEOUT"), 10),
		},
		Log: types.LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", defaultLogLevel),
			Format: getEnvOrDefault("LOG_FORMAT", defaultLogFormat),
		},
		Performance: types.PerformanceConfig{
			MaxConcurrentRequests: parseInteger(os.Getenv("MAX_CONCURRENT_REQUESTS"), defaultMaxConcurrentRequests),
		},
		PokeAPI: types.UpstreamConfig{
			Host:           os.Getenv("POKEAPI_HOST"),
			Secure:         parseBoolean(os.Getenv("POKEAPI_SECURE"), true),
			TimeoutSeconds: parseInteger(os.Getenv("UPSTREAM_TIMEOUT"), defaultUpstreamTimeout),
			ConnectSeconds: parseInteger(os.Getenv("CONNECT_TIMEOUT"), defaultConnectTimeout),
		},
		FunTranslations: types.UpstreamConfig{
			Host:           os.Getenv("FUN_TRANSLATIONS_HOST"),
			Secure:         parseBoolean(os.Getenv("FUN_TRANSLATIONS_SECURE"), true),
			TimeoutSeconds: parseInteger(os.Getenv("UPSTREAM_TIMEOUT"), defaultUpstreamTimeout),
			ConnectSeconds: parseInteger(os.Getenv("CONNECT_TIMEOUT"), defaultConnectTimeout),
		},
	}

	if err := applyFlags(config, args); err != nil {
		return nil, err
	}

	manager := &Manager{config: config}
	if err := manager.Validate(); err != nil {
		return nil, err
	}

	return manager, nil
}

// applyFlags overlays CLI flag values onto the environment-derived config.
// Only flags the caller actually set override the environment.
func applyFlags(config *Config, args []string) error {
	flags := pflag.NewFlagSet("pokedex-api", pflag.ContinueOnError)

	port := flags.Int("port", config.Server.Port, "server listening port (1-65535)")
	host := flags.String("host", config.Server.Host, "server bind address")
	pokeAPIHost := flags.String("pokeapi-host", config.PokeAPI.Host, `PokeAPI hostname (e.g. "pokeapi.co")`)
	pokeAPISecure := flags.Bool("pokeapi-secure", config.PokeAPI.Secure, "use https for PokeAPI")
	funHost := flags.String("fun-translations-host", config.FunTranslations.Host, `Fun Translations hostname (e.g. "api.funtranslations.com")`)
	funSecure := flags.Bool("fun-translations-secure", config.FunTranslations.Secure, "use https for Fun Translations")
	logLevel := flags.String("log-level", config.Log.Level, "log level (debug, info, warn, error)")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("failed to parse CLI flags: %w", err)
	}

	config.Server.Port = *port
	config.Server.Host = *host
	config.PokeAPI.Host = *pokeAPIHost
	config.PokeAPI.Secure = *pokeAPISecure
	config.FunTranslations.Host = *funHost
	config.FunTranslations.Secure = *funSecure
	config.Log.Level = *logLevel

	return nil
}

// Validate checks the configuration and collects all errors before failing.
func (m *Manager) Validate() error {
	var errs []string

	if m.config.Server.Port < 1 || m.config.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("port must be between 1 and 65535, got %d", m.config.Server.Port))
	}
	if m.config.Performance.MaxConcurrentRequests < 1 {
		errs = append(errs, "max concurrent requests cannot be less than 1")
	}

	if m.config.PokeAPI.Host == "" {
		errs = append(errs, "POKEAPI_HOST is required")
	} else if !hostPattern.MatchString(m.config.PokeAPI.Host) {
		errs = append(errs, fmt.Sprintf("invalid pokeapi host: %s", m.config.PokeAPI.Host))
	}

	if m.config.FunTranslations.Host == "" {
		errs = append(errs, "FUN_TRANSLATIONS_HOST is required")
	} else if !hostPattern.MatchString(m.config.FunTranslations.Host) {
		errs = append(errs, fmt.Sprintf("invalid fun translations host: %s", m.config.FunTranslations.Host))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// GetEffectiveServerConfig returns the server configuration
func (m *Manager) GetEffectiveServerConfig() types.ServerConfig {
	return m.config.Server
}

// GetLogConfig returns the logging configuration
func (m *Manager) GetLogConfig() types.LogConfig {
	return m.config.Log
}

// GetPerformanceConfig returns the performance configuration
func (m *Manager) GetPerformanceConfig() types.PerformanceConfig {
	return m.config.Performance
}

// GetPokeAPIConfig returns the PokeAPI upstream configuration
func (m *Manager) GetPokeAPIConfig() types.UpstreamConfig {
	return m.config.PokeAPI
}

// GetFunTranslationsConfig returns the Fun Translations upstream configuration
func (m *Manager) GetFunTranslationsConfig() types.UpstreamConfig {
	return m.config.FunTranslations
}

// DisplayServerConfig logs the effective configuration at startup.
func (m *Manager) DisplayServerConfig() {
	logrus.Info("Server configuration:")
	logrus.Infof("  Listen: %s:%d", m.config.Server.Host, m.config.Server.Port)
	logrus.Infof("  PokeAPI: %s", m.config.PokeAPI.BaseURL("/api/v2"))
	logrus.Infof("  Fun Translations: %s", m.config.FunTranslations.BaseURL("/translate"))
	logrus.Infof("  Upstream timeout: %ds (connect %ds)", m.config.PokeAPI.TimeoutSeconds, m.config.PokeAPI.ConnectSeconds)
	logrus.Infof("  Log level: %s", m.config.Log.Level)
}

// getEnvOrDefault returns the environment value or a default when empty.
func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// parseInteger parses an integer environment value with a default.
func parseInteger(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// parseBoolean parses a boolean environment value with a default.
func parseBoolean(value string, defaultValue bool) bool {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(strings.ToLower(value))
	if err != nil {
		return defaultValue
	}
	return parsed
}
