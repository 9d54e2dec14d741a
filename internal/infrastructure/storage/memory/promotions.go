package memory

import (
	"context"
	"slices"
	"sync"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/id"
	"salesdesk/internal/core/tx"
	"salesdesk/internal/domain/promotion"
)

// PromotionRepo stores promotions indexed by target product.
type PromotionRepo struct {
	mu        sync.RWMutex
	byID      map[id.ID]*promotion.Promotion
	byProduct map[string][]id.ID
}

// NewPromotionRepo creates an empty promotion book.
func NewPromotionRepo() *PromotionRepo {
	return &PromotionRepo{
		byID:      make(map[id.ID]*promotion.Promotion),
		byProduct: make(map[string][]id.ID),
	}
}

var _ promotion.Repository = (*PromotionRepo)(nil)

func (r *PromotionRepo) Create(ctx context.Context, p *promotion.Promotion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; exists {
		return apperror.NewDuplicate("promotion", "id", p.ID.String())
	}
	r.byID[p.ID] = p.Clone()
	r.byProduct[p.ProductCode] = append(r.byProduct[p.ProductCode], p.ID)

	pid, code := p.ID, p.ProductCode
	tx.OnRollback(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.byID, pid)
		r.byProduct[code] = slices.DeleteFunc(r.byProduct[code], func(v id.ID) bool { return v == pid })
	})
	return nil
}

func (r *PromotionRepo) ListByProduct(_ context.Context, code string) ([]*promotion.Promotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byProduct[code]
	out := make([]*promotion.Promotion, 0, len(ids))
	for _, pid := range ids {
		out = append(out, r.byID[pid].Clone())
	}
	return out, nil
}

func (r *PromotionRepo) List(_ context.Context) ([]*promotion.Promotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*promotion.Promotion, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p.Clone())
	}
	slices.SortFunc(out, func(a, b *promotion.Promotion) int {
		switch {
		case id.Less(a.ID, b.ID):
			return -1
		case id.Less(b.ID, a.ID):
			return 1
		}
		return 0
	})
	return out, nil
}
