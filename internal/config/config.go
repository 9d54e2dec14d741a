// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"salesdesk/internal/core/numerator"
)

// Config holds runtime configuration for the server.
type Config struct {
	AppEnv  string `envconfig:"APP_ENV" default:"development"`
	AppPort string `envconfig:"APP_PORT" default:"8080"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// TaxRate is applied by the HTTP layer when a caller omits the tax amount.
	TaxRate  decimal.Decimal `envconfig:"TAX_RATE" default:"0.19"`
	Currency string          `envconfig:"CURRENCY" default:"USD"`

	NumberReset       string `envconfig:"NUMBER_RESET" default:"year"`
	NumeratorStrategy string `envconfig:"NUMERATOR_STRATEGY" default:"cached"`

	SeedDemo bool `envconfig:"SEED_DEMO" default:"true"`
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot.
func (c *Config) Validate() error {
	if c.TaxRate.IsNegative() {
		return fmt.Errorf("TAX_RATE must not be negative, got %s", c.TaxRate)
	}
	switch numerator.ResetPeriod(strings.ToLower(c.NumberReset)) {
	case numerator.ResetYearly, numerator.ResetMonthly, numerator.ResetNever:
	default:
		return fmt.Errorf("NUMBER_RESET must be year, month or never, got %q", c.NumberReset)
	}
	switch strings.ToLower(c.NumeratorStrategy) {
	case "strict", "cached":
	default:
		return fmt.Errorf("NUMERATOR_STRATEGY must be strict or cached, got %q", c.NumeratorStrategy)
	}
	return nil
}

// IsDevelopment returns true when the server runs in development.
func (c *Config) IsDevelopment() bool {
	return c != nil && c.AppEnv == "development"
}

// ResetPeriod returns the configured numbering reset period.
func (c *Config) ResetPeriod() numerator.ResetPeriod {
	return numerator.ResetPeriod(strings.ToLower(c.NumberReset))
}

// QuotationStrategy returns the numbering strategy used for quotations.
func (c *Config) QuotationStrategy() numerator.Strategy {
	return numerator.ParseStrategy(strings.ToLower(c.NumeratorStrategy))
}
