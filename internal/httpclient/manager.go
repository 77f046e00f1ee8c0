// Package httpclient manages pooled HTTP clients for upstream calls.
package httpclient

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"pokedex-api/internal/types"
)

// Config defines the parameters for creating an HTTP client.
// This struct is used to generate a unique fingerprint for client reuse.
type Config struct {
	ConnectTimeout      time.Duration
	RequestTimeout      time.Duration
	IdleConnTimeout     time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

// ConfigFromUpstream derives a client configuration from an upstream's
// configured timeouts, filling in pooling defaults.
func ConfigFromUpstream(upstream types.UpstreamConfig) *Config {
	return &Config{
		ConnectTimeout:      time.Duration(upstream.ConnectSeconds) * time.Second,
		RequestTimeout:      time.Duration(upstream.TimeoutSeconds) * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
	}
}

// getFingerprint builds a cache key from all configuration fields.
func (c *Config) getFingerprint() string {
	return fmt.Sprintf("%s|%s|%s|%d|%d",
		c.ConnectTimeout, c.RequestTimeout, c.IdleConnTimeout,
		c.MaxIdleConns, c.MaxIdleConnsPerHost)
}

// Manager manages the lifecycle of HTTP clients.
// It creates and caches clients based on their configuration fingerprint,
// ensuring that clients with the same configuration are reused.
type Manager struct {
	clients map[string]*http.Client
	lock    sync.RWMutex
}

// NewManager creates a new client manager.
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*http.Client),
	}
}

// GetClient returns an HTTP client that matches the given configuration.
// If a matching client already exists in the cache, it is returned.
// Otherwise, a new client is created, cached, and returned.
func (m *Manager) GetClient(config *Config) *http.Client {
	fingerprint := config.getFingerprint()

	// Fast path with read lock
	m.lock.RLock()
	client, exists := m.clients[fingerprint]
	m.lock.RUnlock()
	if exists {
		return client
	}

	// Slow path with write lock
	m.lock.Lock()
	defer m.lock.Unlock()

	// Double-check in case another goroutine created the client while we were waiting for the lock.
	if client, exists = m.clients[fingerprint]; exists {
		return client
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   config.ConnectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
		IdleConnTimeout:     config.IdleConnTimeout,
		ForceAttemptHTTP2:   true,
	}

	client = &http.Client{
		Transport: transport,
		Timeout:   config.RequestTimeout,
	}
	m.clients[fingerprint] = client

	return client
}

// CloseIdleConnections closes idle connections for all managed clients.
func (m *Manager) CloseIdleConnections() {
	m.lock.RLock()
	defer m.lock.RUnlock()

	for _, client := range m.clients {
		if transport, ok := client.Transport.(*http.Transport); ok {
			transport.CloseIdleConnections()
		}
	}
}
