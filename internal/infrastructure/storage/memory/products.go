package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/tx"
	"salesdesk/internal/domain/catalogs/product"
)

// ProductRepo stores products by code.
type ProductRepo struct {
	mu     sync.RWMutex
	byCode map[string]*product.Product
}

// NewProductRepo creates an empty product catalog.
func NewProductRepo() *ProductRepo {
	return &ProductRepo{byCode: make(map[string]*product.Product)}
}

var _ product.Repository = (*ProductRepo)(nil)

func (r *ProductRepo) Create(ctx context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byCode[p.Code]; exists {
		return apperror.NewDuplicate("product", "code", p.Code)
	}
	r.byCode[p.Code] = p.Clone()

	code := p.Code
	tx.OnRollback(ctx, func() {
		r.mu.Lock()
		delete(r.byCode, code)
		r.mu.Unlock()
	})
	return nil
}

func (r *ProductRepo) Update(ctx context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.byCode[p.Code]
	if !ok {
		return apperror.NewNotFound("product", p.Code)
	}
	r.byCode[p.Code] = p.Clone()

	tx.OnRollback(ctx, func() {
		r.mu.Lock()
		r.byCode[prev.Code] = prev
		r.mu.Unlock()
	})
	return nil
}

func (r *ProductRepo) GetByCode(_ context.Context, code string) (*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byCode[code]
	if !ok {
		return nil, apperror.NewNotFound("product", code)
	}
	return p.Clone(), nil
}

func (r *ProductRepo) List(_ context.Context) ([]*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*product.Product, 0, len(r.byCode))
	for _, p := range r.byCode {
		out = append(out, p.Clone())
	}
	slices.SortFunc(out, func(a, b *product.Product) int { return strings.Compare(a.Code, b.Code) })
	return out, nil
}
