package product

import (
	"context"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	// GetByCode returns apperror NotFound when the code is unknown.
	GetByCode(ctx context.Context, code string) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
}

// Provider is the read side consumed by document authoring.
type Provider interface {
	ProductByCode(ctx context.Context, code string) (*Product, error)
}
