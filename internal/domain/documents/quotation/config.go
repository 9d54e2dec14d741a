package quotation

import "salesdesk/internal/core/numerator"

const (
	// NumeratorStrategy defines the numbering strategy for this document type.
	// Quotations are not accounting documents, so gaps in the sequence are acceptable.
	NumeratorStrategy = numerator.StrategyCached

	// NumberPrefix yields numbers like QT-2026-00001.
	NumberPrefix = numerator.PrefixQuotation
)
