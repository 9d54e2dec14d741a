// Package entity provides base types for all domain entities.
package entity

import (
	"context"
	"time"

	"salesdesk/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants only.
type Validatable interface {
	// Validate returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// BaseEntity contains common fields for all entities.
type BaseEntity struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `json:"id"`

	// Version is incremented on each change; repositories use it for optimistic checks.
	Version int `json:"version"`
}

// NewBaseEntity creates a new BaseEntity with generated ID.
func NewBaseEntity() BaseEntity {
	return BaseEntity{
		ID:      id.New(),
		Version: 1,
	}
}

// Touch increments version.
func (b *BaseEntity) Touch() {
	b.Version++
}

// BaseDocument extends BaseEntity with audit fields for documents.
type BaseDocument struct {
	BaseEntity

	// Number is the human-readable document number (QT-2026-00001)
	Number string `json:"number"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `json:"createdBy,omitempty"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
}

// NewBaseDocument creates a new BaseDocument stamped at now.
func NewBaseDocument(number string, now time.Time, actor string) BaseDocument {
	return BaseDocument{
		BaseEntity: NewBaseEntity(),
		Number:     number,
		CreatedAt:  now,
		UpdatedAt:  now,
		CreatedBy:  actor,
		UpdatedBy:  actor,
	}
}

// TouchAt records a modification at now by actor and increments version.
func (b *BaseDocument) TouchAt(now time.Time, actor string) {
	b.UpdatedAt = now
	if actor != "" {
		b.UpdatedBy = actor
	}
	b.BaseEntity.Touch()
}

// GetID returns the document ID.
func (b *BaseDocument) GetID() id.ID {
	return b.ID
}

// GetVersion returns the current version.
func (b *BaseDocument) GetVersion() int {
	return b.Version
}
