// Package id provides identifiers for documents, payments and ledger entries.
// Identifiers are UUIDv7, so sorting by id follows creation order.
package id

import (
	"github.com/google/uuid"
)

// ID is the identifier type shared by every entity in the core.
type ID = uuid.UUID

// New generates a new time-ordered identifier.
func New() ID {
	v, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return v
}

// Parse converts string to ID with validation.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse converts string to ID, panics on error.
// Use only for constants and tests.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// Nil returns zero-value ID.
func Nil() ID {
	return uuid.Nil
}

// IsNil checks if ID is zero-value.
func IsNil(v ID) bool {
	return v == uuid.Nil
}

// Less orders identifiers bytewise, used for deterministic tie-breaks.
func Less(a, b ID) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
