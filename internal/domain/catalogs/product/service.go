package product

import (
	"context"
	"fmt"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/types"
	"salesdesk/pkg/logger"
)

// Service provides catalog maintenance and lookups.
type Service struct {
	repo Repository
}

// NewService creates a new Product service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var _ Provider = (*Service)(nil)

// Register validates and stores a new product.
func (s *Service) Register(ctx context.Context, p *Product) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}

	existing, err := s.repo.GetByCode(ctx, p.Code)
	if err != nil && !apperror.IsNotFound(err) {
		return fmt.Errorf("check existing product: %w", err)
	}
	if existing != nil {
		return apperror.NewDuplicate("product", "code", p.Code)
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	logger.Info(ctx, "product registered", "code", p.Code, "category", p.Category, "unit_price", p.UnitPrice)
	return nil
}

// ProductByCode implements Provider.
func (s *Service) ProductByCode(ctx context.Context, code string) (*Product, error) {
	return s.repo.GetByCode(ctx, code)
}

// ChangePrice updates the catalog price. Prices already captured on documents are unaffected.
func (s *Service) ChangePrice(ctx context.Context, code string, price types.Money) (*Product, error) {
	if price.IsNegative() {
		return nil, apperror.NewInvalidPrice(price.String()).WithDetail("product_code", code)
	}

	p, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	old := p.UnitPrice
	p.UnitPrice = price
	p.Touch()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	logger.Info(ctx, "product price changed", "code", code, "old_price", old, "new_price", price)
	return p, nil
}

// List returns every product ordered by code.
func (s *Service) List(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}
