// Package config loads coordinator settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the server reads at startup.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `env:"STATWARS_ADDR" envDefault:":8080"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"STATWARS_LOG_LEVEL" envDefault:"info"`

	// LogFormat selects text or json handler output.
	LogFormat string `env:"STATWARS_LOG_FORMAT" envDefault:"text"`

	// CatalogPath points to a JSON card catalog. Empty means the
	// built-in catalog.
	CatalogPath string `env:"STATWARS_CATALOG" envDefault:""`
}

// ParseEnv reads the configuration from process environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
