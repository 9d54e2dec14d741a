package promotion

import (
	"context"
	"fmt"
	"time"
)

// Provider supplies the promotions targeting a product.
type Provider interface {
	ActivePromotionsFor(ctx context.Context, productCode string) ([]*Promotion, error)
}

// Resolver picks the promotion that applies to a product on a date.
// It holds no state of its own and is safe for concurrent use.
type Resolver struct {
	provider Provider
}

// NewResolver creates a resolver over provider.
func NewResolver(provider Provider) *Resolver {
	return &Resolver{provider: provider}
}

// Resolve returns the applicable promotion, or nil when none qualifies.
// Among qualifying promotions the latest start date wins, then the lowest id.
func (r *Resolver) Resolve(ctx context.Context, productCode string, onDate time.Time) (*Promotion, error) {
	candidates, err := r.provider.ActivePromotionsFor(ctx, productCode)
	if err != nil {
		return nil, fmt.Errorf("promotions for %s: %w", productCode, err)
	}

	var best *Promotion
	for _, p := range candidates {
		if p.ProductCode != productCode || !p.Covers(onDate) {
			continue
		}
		if best == nil || p.precedes(best) {
			best = p
		}
	}
	return best, nil
}
