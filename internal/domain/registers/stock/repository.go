// Package stock provides the inventory register: on-hand quantities per product.
package stock

import (
	"context"
	"time"
)

// Record is the inventory position of one product.
type Record struct {
	ProductCode string    `json:"productCode"`
	OnHand      int       `json:"onHand"`
	Active      bool      `json:"active"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Available is the quantity that can be sold. Inactive records offer nothing.
func (r Record) Available() int {
	if !r.Active || r.OnHand < 0 {
		return 0
	}
	return r.OnHand
}

// Line is one product quantity in a batch movement.
type Line struct {
	ProductCode string
	Quantity    int
}

// Repository defines operations for the inventory register.
type Repository interface {
	// Get returns the record for code, apperror NotFound when the product has no record.
	Get(ctx context.Context, code string) (Record, error)

	// Put creates or replaces a record.
	Put(ctx context.Context, rec Record) error

	// Adjust applies signed deltas to on-hand quantities as one unit.
	// Unknown codes fail the whole batch.
	Adjust(ctx context.Context, deltas map[string]int, at time.Time) error

	// List returns every record ordered by product code.
	List(ctx context.Context) ([]Record, error)
}

// Provider is the inventory contract consumed by order fulfillment.
type Provider interface {
	QuantityOf(ctx context.Context, code string) (int, error)
	// Decrement removes every line from stock or nothing at all.
	Decrement(ctx context.Context, lines []Line) error
	// Restock returns quantities to stock.
	Restock(ctx context.Context, lines []Line) error
}
