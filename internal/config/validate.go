package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

func (c *Config) validate() error {
	if err := c.validateNetwork(); err != nil {
		return err
	}

	if err := c.validateCORS(); err != nil {
		return err
	}

	if err := c.validateLayout(); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateNetwork() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("SNA_PORT must be a valid integer: %w", err)
	}

	if port < 1 || port > 65535 {
		return fmt.Errorf("SNA_PORT must be between 1 and 65535")
	}

	// Allow loopback addresses for local deployments and 0.0.0.0/:: for
	// containerized deployments where the network boundary is enforced
	// externally (e.g. Docker, Kubernetes).
	validHosts := map[string]bool{
		"127.0.0.1": true,
		"::1":       true,
		"localhost": true,
		"0.0.0.0":   true,
		"::":        true,
	}
	if !validHosts[c.ListenHost] {
		return fmt.Errorf("SNA_LISTEN_HOST must be a loopback address or 0.0.0.0/:: for containers (got %q)", c.ListenHost)
	}

	if c.MaxBodySize < 1024 {
		return fmt.Errorf("SNA_MAX_BODY_SIZE must be at least 1024 bytes")
	}

	return nil
}

func (c *Config) validateCORS() error {
	for _, origin := range c.CORSOrigins {
		if origin == "*" {
			return fmt.Errorf("SNA_CORS_ORIGINS must not contain wildcard '*'")
		}
		if strings.ContainsAny(origin, "*?[]") {
			return fmt.Errorf("SNA_CORS_ORIGINS must not contain glob characters (*?[]), got %q", origin)
		}
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("SNA_CORS_ORIGINS contains invalid origin %q (must have scheme and host)", origin)
		}
	}

	return nil
}

func (c *Config) validateLayout() error {
	if c.LayoutRepulsion < 0 {
		return fmt.Errorf("SNA_LAYOUT_REPULSION must not be negative")
	}
	if c.LayoutAttraction < 0 {
		return fmt.Errorf("SNA_LAYOUT_ATTRACTION must not be negative")
	}
	if c.LayoutDamping < 0 || c.LayoutDamping >= 1 {
		return fmt.Errorf("SNA_LAYOUT_DAMPING must be in [0, 1)")
	}
	if c.LayoutIterations < 0 {
		return fmt.Errorf("SNA_LAYOUT_ITERATIONS must not be negative")
	}
	if c.AStarHeuristicScale <= 0 {
		return fmt.Errorf("SNA_ASTAR_HEURISTIC_SCALE must be positive")
	}

	return nil
}
