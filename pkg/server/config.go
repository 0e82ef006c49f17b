package server

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config holds server configuration.
type Config struct {
	// Address is the listen address.
	// Default: "localhost:3000".
	Address string

	// HotReload serves /_reload and injects the reload client into pages.
	HotReload bool

	// Metrics is exposed on /metrics. Nil disables the endpoint.
	Metrics prometheus.Gatherer

	// ReadHeaderTimeout bounds reading request headers.
	// Default: 5 seconds.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 10 seconds.
	ShutdownTimeout time.Duration

	// Logger receives request and lifecycle logs.
	// Default: slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Address:           "localhost:3000",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// withDefaults returns a copy of c with unset fields filled in.
func (c *Config) withDefaults() *Config {
	defaults := DefaultConfig()
	if c == nil {
		return defaults
	}
	out := *c
	if out.Address == "" {
		out.Address = defaults.Address
	}
	if out.ReadHeaderTimeout == 0 {
		out.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	if out.ShutdownTimeout == 0 {
		out.ShutdownTimeout = defaults.ShutdownTimeout
	}
	return &out
}
