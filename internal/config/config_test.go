package config

import (
	"strings"
	"testing"
)

// clearEnv blanks every variable Load reads so ambient environment never
// leaks into a test.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"SNA_PORT", "SNA_LISTEN_HOST", "SNA_CORS_ORIGINS", "LOG_LEVEL",
		"SNA_MAX_BODY_SIZE", "SNA_LAYOUT_REPULSION", "SNA_LAYOUT_ATTRACTION",
		"SNA_LAYOUT_DAMPING", "SNA_LAYOUT_ITERATIONS", "SNA_ASTAR_HEURISTIC_SCALE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8090" {
		t.Errorf("port = %q, want %q", cfg.Port, "8090")
	}
	if cfg.ListenHost != "127.0.0.1" {
		t.Errorf("listen host = %q, want %q", cfg.ListenHost, "127.0.0.1")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.MaxBodySize != 10<<20 {
		t.Errorf("max body size = %d, want %d", cfg.MaxBodySize, 10<<20)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("cors origins = %v", cfg.CORSOrigins)
	}
	if cfg.AStarHeuristicScale != 0.01 {
		t.Errorf("heuristic scale = %f, want 0.01", cfg.AStarHeuristicScale)
	}
	if cfg.LayoutRepulsion != 0 || cfg.LayoutIterations != 0 {
		t.Error("layout overrides must default to zero (solver defaults)")
	}

	if got := cfg.Addr(); got != "127.0.0.1:8090" {
		t.Errorf("addr = %q, want %q", got, "127.0.0.1:8090")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SNA_PORT", "9000")
	t.Setenv("SNA_LISTEN_HOST", "0.0.0.0")
	t.Setenv("SNA_CORS_ORIGINS", "http://a.example.com, http://b.example.com")
	t.Setenv("SNA_LAYOUT_DAMPING", "0.9")
	t.Setenv("SNA_LAYOUT_ITERATIONS", "300")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:9000" {
		t.Errorf("addr = %q, want %q", cfg.Addr(), "0.0.0.0:9000")
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.example.com" {
		t.Errorf("cors origins = %v; whitespace must be trimmed", cfg.CORSOrigins)
	}
	if cfg.LayoutDamping != 0.9 || cfg.LayoutIterations != 300 {
		t.Errorf("layout overrides = %f/%d, want 0.9/300", cfg.LayoutDamping, cfg.LayoutIterations)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"port not a number", "SNA_PORT", "http", "SNA_PORT"},
		{"port out of range", "SNA_PORT", "70000", "between 1 and 65535"},
		{"public listen host", "SNA_LISTEN_HOST", "203.0.113.7", "SNA_LISTEN_HOST"},
		{"body size too small", "SNA_MAX_BODY_SIZE", "100", "at least 1024"},
		{"body size not a number", "SNA_MAX_BODY_SIZE", "huge", "valid integer"},
		{"cors wildcard", "SNA_CORS_ORIGINS", "*", "wildcard"},
		{"cors glob", "SNA_CORS_ORIGINS", "http://*.example.com", "glob"},
		{"cors missing scheme", "SNA_CORS_ORIGINS", "example.com", "scheme and host"},
		{"negative repulsion", "SNA_LAYOUT_REPULSION", "-1", "must not be negative"},
		{"damping at one", "SNA_LAYOUT_DAMPING", "1.0", "[0, 1)"},
		{"negative iterations", "SNA_LAYOUT_ITERATIONS", "-5", "must not be negative"},
		{"negative heuristic scale", "SNA_ASTAR_HEURISTIC_SCALE", "-0.5", "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want to mention %q", err, tt.want)
			}
		})
	}
}
