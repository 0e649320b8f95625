// Package config loads process-wide configuration from the environment.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

const defaultBaseURL = "https://sentry.io/api/0/"

// Config holds the values read once at startup. It is immutable after Load
// and passed explicitly to the components that need it; handlers never read
// the environment directly.
type Config struct {
	// AuthToken authenticates every outbound Sentry API call. Required.
	AuthToken string
	// BaseURL is the Sentry API root, always with a trailing slash.
	BaseURL string
	// DefaultOrg is the fallback organization slug for tools that can
	// resolve one from an issue URL but were given neither.
	DefaultOrg string
	// MCPToken, when set, gates the HTTP transport behind bearer auth.
	MCPToken string
}

// ErrMissingAuthToken means SENTRY_AUTH_TOKEN is unset. The process must not
// start without it.
var ErrMissingAuthToken = errors.New("SENTRY_AUTH_TOKEN environment variable is required")

// Load reads configuration from the environment.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("base_url", defaultBaseURL)
	_ = v.BindEnv("auth_token", "SENTRY_AUTH_TOKEN")
	_ = v.BindEnv("base_url", "SENTRY_BASE_URL")
	_ = v.BindEnv("default_org", "SENTRY_ORG")
	_ = v.BindEnv("mcp_token", "MCP_TOKEN")

	cfg := Config{
		AuthToken:  v.GetString("auth_token"),
		BaseURL:    v.GetString("base_url"),
		DefaultOrg: v.GetString("default_org"),
		MCPToken:   v.GetString("mcp_token"),
	}
	if cfg.AuthToken == "" {
		return Config{}, ErrMissingAuthToken
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	return cfg, nil
}
