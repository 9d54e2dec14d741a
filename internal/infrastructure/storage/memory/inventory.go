package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/tx"
	"salesdesk/internal/domain/registers/stock"
)

// InventoryRepo stores one inventory record per product.
type InventoryRepo struct {
	mu      sync.RWMutex
	records map[string]stock.Record
}

// NewInventoryRepo creates an empty inventory register.
func NewInventoryRepo() *InventoryRepo {
	return &InventoryRepo{records: make(map[string]stock.Record)}
}

var _ stock.Repository = (*InventoryRepo)(nil)

func (r *InventoryRepo) Get(_ context.Context, code string) (stock.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[code]
	if !ok {
		return stock.Record{}, apperror.NewNotFound("inventory record", code)
	}
	return rec, nil
}

func (r *InventoryRepo) Put(ctx context.Context, rec stock.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, existed := r.records[rec.ProductCode]
	r.records[rec.ProductCode] = rec

	tx.OnRollback(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if existed {
			r.records[prev.ProductCode] = prev
		} else {
			delete(r.records, rec.ProductCode)
		}
	})
	return nil
}

// Adjust applies all deltas under one lock. The undo applies the inverse deltas,
// so concurrent movements on the same products are preserved.
func (r *InventoryRepo) Adjust(ctx context.Context, deltas map[string]int, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for code := range deltas {
		if _, ok := r.records[code]; !ok {
			return apperror.NewNotFound("inventory record", code)
		}
	}
	r.apply(deltas, at)

	tx.OnRollback(ctx, func() {
		inverse := make(map[string]int, len(deltas))
		for code, d := range deltas {
			inverse[code] = -d
		}
		r.mu.Lock()
		r.apply(inverse, at)
		r.mu.Unlock()
	})
	return nil
}

func (r *InventoryRepo) apply(deltas map[string]int, at time.Time) {
	for code, d := range deltas {
		rec := r.records[code]
		rec.OnHand += d
		rec.UpdatedAt = at
		r.records[code] = rec
	}
}

func (r *InventoryRepo) List(_ context.Context) ([]stock.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stock.Record, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	slices.SortFunc(out, func(a, b stock.Record) int { return strings.Compare(a.ProductCode, b.ProductCode) })
	return out, nil
}
