package promotion

import (
	"context"
	"fmt"

	"salesdesk/pkg/logger"
)

// Repository defines the interface for Promotion persistence.
type Repository interface {
	Create(ctx context.Context, p *Promotion) error
	// ListByProduct returns every promotion targeting code, active or not.
	ListByProduct(ctx context.Context, code string) ([]*Promotion, error)
	List(ctx context.Context) ([]*Promotion, error)
}

// Service registers promotions and serves them to the resolver.
type Service struct {
	repo Repository
}

// NewService creates a new promotion service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var _ Provider = (*Service)(nil)

// Register validates and stores p. An invalid condition is rejected here, never at pricing time.
func (s *Service) Register(ctx context.Context, p *Promotion) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return fmt.Errorf("create promotion: %w", err)
	}

	logger.Info(ctx, "promotion registered",
		"promotion_id", p.ID,
		"product_code", p.ProductCode,
		"kind", p.Kind,
		"magnitude", p.Magnitude,
		"start", p.StartDate.Format("2006-01-02"),
		"end", p.EndDate.Format("2006-01-02"),
	)
	return nil
}

// ActivePromotionsFor implements Provider.
func (s *Service) ActivePromotionsFor(ctx context.Context, productCode string) ([]*Promotion, error) {
	all, err := s.repo.ListByProduct(ctx, productCode)
	if err != nil {
		return nil, err
	}
	active := all[:0]
	for _, p := range all {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}

// List returns every registered promotion.
func (s *Service) List(ctx context.Context) ([]*Promotion, error) {
	return s.repo.List(ctx)
}
