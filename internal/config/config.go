package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the ML service.
//
// FLASK_ENV is read (instead of a more conventional name) so that deployment
// manifests written for earlier revisions of this service keep working.
type Config struct {
	Port        int    `env:"PORT" envDefault:"5000"`
	Environment string `env:"FLASK_ENV" envDefault:"development"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid shutdown timeout: %s", c.ShutdownTimeout)
	}
	return nil
}

// Debug reports whether the service runs in development mode.
func (c *Config) Debug() bool {
	return c.Environment == "development"
}

// Addr returns the listen address. The service binds all interfaces.
func (c *Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}
