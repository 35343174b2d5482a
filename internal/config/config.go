// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the configuration for the dashboard service.
// Environment variables are parsed from the MENTORO_ prefix,
// e.g. MENTORO_HTTP_PORT, MENTORO_DB_DRIVER.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Storage: postgres for deployments, sqlite for local development.
	DBDriver    string `envconfig:"DB_DRIVER" default:"sqlite"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"./data/mentoro.db"`

	// Suggestion provider (OpenAI-compatible chat completions).
	// With no API key configured the service falls back to static suggestions.
	SuggestBaseURL string `envconfig:"SUGGEST_BASE_URL" default:"https://api.groq.com"`
	SuggestAPIKey  string `envconfig:"SUGGEST_API_KEY" default:""`
	SuggestModel   string `envconfig:"SUGGEST_MODEL" default:"llama3-8b-8192"`

	// Streak reconciliation sweep. The scheduler always fires at local
	// midnight; this caps how long one sweep may run.
	ReconcileTimeoutSeconds int `envconfig:"RECONCILE_TIMEOUT_SECONDS" default:"60"`

	// Health monitoring
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"2"`
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`

	// DevMode enables the mock authorizer with its hardcoded API key.
	DevMode bool `envconfig:"DEV_MODE" default:"true"`

	// APIKeys maps static API keys to user ids outside dev mode, in the form
	// "key1:user1,key2:user2".
	APIKeys string `envconfig:"API_KEYS" default:""`
}

// New creates a Config by parsing MENTORO_-prefixed environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("MENTORO", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks driver selection and its required settings.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("MENTORO_POSTGRES_DSN required when DB_DRIVER=postgres")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("MENTORO_SQLITE_PATH required when DB_DRIVER=sqlite")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	return nil
}

// GetHTTPAddr returns the HTTP server bind address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
