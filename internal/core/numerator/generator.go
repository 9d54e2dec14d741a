package numerator

import (
	"context"
	"time"
)

// Generator generates sequential document numbers.
// Implementations live in pkg/numerator.
type Generator interface {
	// GetNextNumber generates the next document number for period.
	// Pattern: PREFIX-YEAR-XXXXX (e.g., INV-2026-00001)
	GetNextNumber(ctx context.Context, cfg Config, opts *Options, period time.Time) (string, error)
}
