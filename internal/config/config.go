package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// MCP transports.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	MCPTransport    string
	HTTPAddr        string
	OpsEnabled      bool
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// ZIP code lookup cache. A size of 0 disables caching.
	LocationCacheSize int
	LocationCacheTTL  time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	cacheSize, err := parseLocationCacheSize()
	if err != nil {
		return nil, err
	}

	cacheTTL, err := time.ParseDuration(sharedcfg.EnvOrDefault("LOCATION_CACHE_TTL", "24h"))
	if err != nil || cacheTTL <= 0 {
		return nil, errors.New("invalid LOCATION_CACHE_TTL")
	}

	opsEnabled := true
	if v := os.Getenv("OPS_ENABLED"); v != "" {
		opsEnabled = v == "true"
	}

	cfg := &Config{
		MCPTransport:      sharedcfg.EnvOrDefault("MCP_TRANSPORT", TransportStdio),
		HTTPAddr:          sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		OpsEnabled:        opsEnabled,
		LogLevel:          sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:         sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:   shutdownTimeout,
		LocationCacheSize: cacheSize,
		LocationCacheTTL:  cacheTTL,
	}

	switch cfg.MCPTransport {
	case TransportStdio, TransportHTTP:
	default:
		return nil, fmt.Errorf("invalid MCP_TRANSPORT %q: must be %q or %q", cfg.MCPTransport, TransportStdio, TransportHTTP)
	}
	if cfg.MCPTransport == TransportHTTP && !cfg.OpsEnabled {
		return nil, errors.New("MCP_TRANSPORT=http requires OPS_ENABLED")
	}
	if cfg.HTTPAddr == "" && cfg.OpsEnabled {
		return nil, errors.New("HTTP_ADDR is required")
	}

	return cfg, nil
}

func parseLocationCacheSize() (int, error) {
	s := os.Getenv("LOCATION_CACHE_SIZE")
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid LOCATION_CACHE_SIZE %q", s)
	}
	return n, nil
}
