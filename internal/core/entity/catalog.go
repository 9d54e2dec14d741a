package entity

import (
	"context"
	"strings"

	"salesdesk/internal/core/apperror"
)

// Catalog is the base type for reference data (products and the like).
// Identity is the Code, which never changes once assigned.
type Catalog struct {
	BaseEntity

	// Code is the business identifier (SKU), unique within the catalog
	Code string `json:"code"`

	// Name is the display name
	Name string `json:"name"`
}

// NewCatalog creates a new Catalog with generated ID.
func NewCatalog(code, name string) Catalog {
	return Catalog{
		BaseEntity: NewBaseEntity(),
		Code:       strings.TrimSpace(code),
		Name:       strings.TrimSpace(name),
	}
}

// Validate implements Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	if c.Code == "" {
		return apperror.NewValidation("code is required").
			WithDetail("field", "code")
	}
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}
