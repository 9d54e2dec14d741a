// Package numerator provides contracts for human-readable document numbering.
package numerator

import "strings"

// Strategy defines the numbering generation strategy.
type Strategy int

const (
	// StrategyStrict reserves one number per call. No gaps.
	StrategyStrict Strategy = iota

	// StrategyCached reserves ranges and hands them out from memory.
	// A restart may leave gaps.
	StrategyCached
)

// ParseStrategy maps a configuration value to a Strategy, defaulting to strict.
func ParseStrategy(s string) Strategy {
	if strings.EqualFold(strings.TrimSpace(s), "cached") {
		return StrategyCached
	}
	return StrategyStrict
}

// Options configuration for number generation.
type Options struct {
	Strategy Strategy
	// RangeSize is the number of values reserved at once by StrategyCached. Default 50.
	RangeSize int64
}

// DefaultOptions returns standard options (Strict).
func DefaultOptions() *Options {
	return &Options{Strategy: StrategyStrict}
}

// ResetPeriod controls when a sequence restarts from 1.
type ResetPeriod string

const (
	ResetYearly  ResetPeriod = "year"
	ResetMonthly ResetPeriod = "month"
	ResetNever   ResetPeriod = "never"
)

// Config holds numbering configuration for one document type.
type Config struct {
	// Prefix added to all numbers (e.g., "QT", "SO", "INV")
	Prefix string

	// IncludeYear adds year to the number
	IncludeYear bool

	// PadWidth is the minimum number width (default 5)
	PadWidth int

	ResetPeriod ResetPeriod
}

// DefaultConfig returns PREFIX-YYYY-NNNNN numbering that restarts every year.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		IncludeYear: true,
		PadWidth:    5,
		ResetPeriod: ResetYearly,
	}
}

// Document prefixes.
const (
	PrefixQuotation = "QT"
	PrefixOrder     = "SO"
	PrefixInvoice   = "INV"
)
