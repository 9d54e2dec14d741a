package invoice

import "salesdesk/internal/core/numerator"

const (
	// NumeratorStrategy defines the numbering strategy for this document type.
	// Invoice is a primary accounting document, so we use Strict strategy.
	NumeratorStrategy = numerator.StrategyStrict

	// NumberPrefix yields numbers like INV-2026-00001.
	NumberPrefix = numerator.PrefixInvoice
)
