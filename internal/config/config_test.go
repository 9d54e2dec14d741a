package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/core/numerator"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.True(t, cfg.TaxRate.Equal(decimal.RequireFromString("0.19")))
	assert.Equal(t, numerator.ResetYearly, cfg.ResetPeriod())
	assert.Equal(t, numerator.StrategyCached, cfg.QuotationStrategy())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("TAX_RATE", "0.07")
	t.Setenv("NUMBER_RESET", "month")
	t.Setenv("NUMERATOR_STRATEGY", "strict")
	t.Setenv("SEED_DEMO", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.TaxRate.Equal(decimal.RequireFromString("0.07")))
	assert.Equal(t, numerator.ResetMonthly, cfg.ResetPeriod())
	assert.Equal(t, numerator.StrategyStrict, cfg.QuotationStrategy())
	assert.False(t, cfg.SeedDemo)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"negative tax rate", "TAX_RATE", "-0.01"},
		{"unparseable tax rate", "TAX_RATE", "nineteen"},
		{"unknown reset period", "NUMBER_RESET", "weekly"},
		{"unknown strategy", "NUMERATOR_STRATEGY", "lazy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
