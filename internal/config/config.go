// Package config provides environment-driven configuration for the analyzer.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration values.
type Config struct {
	Port        string
	ListenHost  string
	CORSOrigins []string
	LogLevel    string
	MaxBodySize int64

	// Layout solver tuning. Zero values mean "use the solver defaults".
	LayoutRepulsion  float64
	LayoutAttraction float64
	LayoutDamping    float64
	LayoutIterations int

	// AStarHeuristicScale converts pixel distance into cost units for the
	// A* heuristic. It must stay small enough that the heuristic never
	// overestimates, or A* loses its optimality guarantee.
	AStarHeuristicScale float64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       envOrDefault("SNA_PORT", "8090"),
		ListenHost: envOrDefault("SNA_LISTEN_HOST", "127.0.0.1"),
		LogLevel:   envOrDefault("LOG_LEVEL", "info"),
	}

	origins := envOrDefault("SNA_CORS_ORIGINS", "http://localhost:3000")
	cfg.CORSOrigins = strings.Split(origins, ",")
	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	var err error

	if cfg.MaxBodySize, err = envInt64("SNA_MAX_BODY_SIZE", 10<<20); err != nil {
		return nil, err
	}
	if cfg.LayoutRepulsion, err = envFloat("SNA_LAYOUT_REPULSION", 0); err != nil {
		return nil, err
	}
	if cfg.LayoutAttraction, err = envFloat("SNA_LAYOUT_ATTRACTION", 0); err != nil {
		return nil, err
	}
	if cfg.LayoutDamping, err = envFloat("SNA_LAYOUT_DAMPING", 0); err != nil {
		return nil, err
	}
	if cfg.LayoutIterations, err = envInt("SNA_LAYOUT_ITERATIONS", 0); err != nil {
		return nil, err
	}
	if cfg.AStarHeuristicScale, err = envFloat("SNA_ASTAR_HEURISTIC_SCALE", 0.01); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}

	return n, nil
}

func envInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}

	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number: %w", key, err)
	}

	return f, nil
}
