package order

import "salesdesk/internal/core/numerator"

const (
	// NumeratorStrategy defines the numbering strategy for this document type.
	// Orders move stock value, so the sequence must have no gaps.
	NumeratorStrategy = numerator.StrategyStrict

	// NumberPrefix yields numbers like SO-2026-00001.
	NumberPrefix = numerator.PrefixOrder
)
