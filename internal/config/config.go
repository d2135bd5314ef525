package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"affiliate-escrow/internal/config/configs"
)

// Config aggregates every configuration section of the escrow service.
// Fields are read from environment variables by caarlos0/env; nested
// sections carry an envPrefix so e.g. Storage.Driver is STORAGE_DRIVER.
// Defaults live on the section types in the configs package.
type Config struct {
	// Env names the deployment environment (prod, dev, ...). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP     configs.HTTP     `envPrefix:"HTTP_"`
	Log      configs.Logger   `envPrefix:"LOG_"`
	Psql     configs.Postgres `envPrefix:"PSQL_"`
	Storage  configs.Storage  `envPrefix:"STORAGE_"`
	Currency configs.Currency `envPrefix:"CURRENCY_"`
	Metrics  configs.Metrics  `envPrefix:"METRICS_"`
}

// Load reads the configuration from the environment and checks the values
// that have no safe fallback.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports configuration values the service cannot run with.
func (c Config) Validate() error {
	if c.Storage.MaxRetries < 0 {
		return fmt.Errorf("STORAGE_MAX_RETRIES must not be negative, got %d", c.Storage.MaxRetries)
	}
	if c.Storage.RetryBudget <= 0 {
		return fmt.Errorf("STORAGE_RETRY_BUDGET must be positive, got %s", c.Storage.RetryBudget)
	}
	if c.Currency.Decimals < 0 || c.Currency.Decimals > 18 {
		return fmt.Errorf("CURRENCY_DECIMALS must be in [0, 18], got %d", c.Currency.Decimals)
	}
	if c.Metrics.Enabled && (c.Metrics.Path == "" || c.Metrics.Path[0] != '/') {
		return fmt.Errorf("METRICS_PATH must start with '/', got %q", c.Metrics.Path)
	}
	return nil
}
