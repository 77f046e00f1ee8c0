package types

import "fmt"

// ConfigManager defines the interface for configuration management
type ConfigManager interface {
	GetEffectiveServerConfig() ServerConfig
	GetLogConfig() LogConfig
	GetPerformanceConfig() PerformanceConfig
	GetPokeAPIConfig() UpstreamConfig
	GetFunTranslationsConfig() UpstreamConfig
	Validate() error
	DisplayServerConfig()
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port                    int    `json:"port"`
	Host                    string `json:"host"`
	ReadTimeout             int    `json:"read_timeout"`
	WriteTimeout            int    `json:"write_timeout"`
	IdleTimeout             int    `json:"idle_timeout"`
	GracefulShutdownTimeout int    `json:"graceful_shutdown_timeout"`
}

// PerformanceConfig represents performance configuration
type PerformanceConfig struct {
	MaxConcurrentRequests int `json:"max_concurrent_requests"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// UpstreamConfig describes one external HTTP dependency.
// Host carries no scheme; Secure selects https vs http.
type UpstreamConfig struct {
	Host           string `json:"host"`
	Secure         bool   `json:"secure"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	ConnectSeconds int    `json:"connect_seconds"`
}

// BaseURL builds the upstream base URL with the given path prefix.
func (u UpstreamConfig) BaseURL(pathPrefix string) string {
	scheme := "http"
	if u.Secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s", scheme, u.Host, pathPrefix)
}
