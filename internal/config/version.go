package config

// Version is the analyzer binary version.
// Set at build time via: -ldflags "-X github.com/EmircanDemirTR/social-network-analyzer/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
