package stock

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/clock"
	"salesdesk/internal/core/tx"
	"salesdesk/pkg/keylock"
	"salesdesk/pkg/logger"
)

var tracer = otel.Tracer("salesdesk/stock")

// Service provides business operations for the inventory register.
// Check-then-decrement runs under per-product locks taken in sorted order.
type Service struct {
	repo  Repository
	clock clock.Clock
	locks *keylock.Map[string]
}

// NewService creates a new inventory register service.
func NewService(repo Repository, clk clock.Clock) *Service {
	return &Service{
		repo:  repo,
		clock: clk,
		locks: keylock.New[string](),
	}
}

var _ Provider = (*Service)(nil)

// QuantityOf returns the available quantity. Unknown products have none.
func (s *Service) QuantityOf(ctx context.Context, code string) (int, error) {
	rec, err := s.repo.Get(ctx, code)
	if err != nil {
		if apperror.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("get stock for %s: %w", code, err)
	}
	return rec.Available(), nil
}

// Get returns the raw record for code.
func (s *Service) Get(ctx context.Context, code string) (Record, error) {
	return s.repo.Get(ctx, code)
}

// List returns every inventory record.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

// Decrement removes all lines from stock atomically. When any product is short
// it fails with InsufficientStock naming the first offending product in line
// order and leaves every quantity unchanged.
func (s *Service) Decrement(ctx context.Context, lines []Line) error {
	codes, need, err := aggregate(lines)
	if err != nil {
		return err
	}
	if len(codes) == 0 {
		return nil
	}

	ctx, span := tracer.Start(ctx, "stock.decrement",
		trace.WithAttributes(attribute.Int("stock.products", len(codes))))
	defer span.End()

	// Inside a transaction the locks are held until it commits or rolls back, so no
	// other caller reads a decrement that may still be undone. Callers must not
	// touch the same products again within that transaction.
	unlock := s.locks.LockAll(codes)
	if !tx.OnComplete(ctx, unlock) {
		defer unlock()
	}

	for _, code := range codes {
		available, err := s.QuantityOf(ctx, code)
		if err != nil {
			span.RecordError(err)
			return err
		}
		if available < need[code] {
			span.SetAttributes(attribute.String("stock.short_product", code))
			return apperror.NewInsufficientStock(code, need[code], available)
		}
	}

	deltas := make(map[string]int, len(codes))
	for _, code := range codes {
		deltas[code] = -need[code]
	}
	if err := s.repo.Adjust(ctx, deltas, s.clock.Now()); err != nil {
		span.RecordError(err)
		return fmt.Errorf("decrement stock: %w", err)
	}

	logger.Info(ctx, "stock decremented", "products", len(codes))
	return nil
}

// Restock adds all lines back to stock. Products without a record get an active one.
func (s *Service) Restock(ctx context.Context, lines []Line) error {
	codes, qty, err := aggregate(lines)
	if err != nil {
		return err
	}
	if len(codes) == 0 {
		return nil
	}

	unlock := s.locks.LockAll(codes)
	defer unlock()

	now := s.clock.Now()
	deltas := make(map[string]int, len(codes))
	for _, code := range codes {
		if _, err := s.repo.Get(ctx, code); err != nil {
			if !apperror.IsNotFound(err) {
				return fmt.Errorf("get stock for %s: %w", code, err)
			}
			if err := s.repo.Put(ctx, Record{ProductCode: code, Active: true, UpdatedAt: now}); err != nil {
				return fmt.Errorf("create stock record: %w", err)
			}
		}
		deltas[code] = qty[code]
	}

	if err := s.repo.Adjust(ctx, deltas, now); err != nil {
		return fmt.Errorf("restock: %w", err)
	}

	logger.Info(ctx, "stock replenished", "products", len(codes))
	return nil
}

// Set overwrites the on-hand quantity and active flag of a product.
func (s *Service) Set(ctx context.Context, code string, onHand int, active bool) (Record, error) {
	if code == "" {
		return Record{}, apperror.NewValidation("product code is required").WithDetail("field", "productCode")
	}
	if onHand < 0 {
		return Record{}, apperror.NewInvalidQuantity(onHand).WithDetail("product_code", code)
	}

	unlock := s.locks.LockAll([]string{code})
	defer unlock()

	rec := Record{ProductCode: code, OnHand: onHand, Active: active, UpdatedAt: s.clock.Now()}
	if err := s.repo.Put(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("put stock record: %w", err)
	}

	logger.Info(ctx, "stock level set", "product_code", code, "on_hand", onHand, "active", active)
	return rec, nil
}

// aggregate validates lines and sums quantities per product, keeping first-seen order.
func aggregate(lines []Line) ([]string, map[string]int, error) {
	codes := make([]string, 0, len(lines))
	qty := make(map[string]int, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, nil, apperror.NewInvalidQuantity(l.Quantity).WithDetail("product_code", l.ProductCode)
		}
		if _, seen := qty[l.ProductCode]; !seen {
			codes = append(codes, l.ProductCode)
		}
		qty[l.ProductCode] += l.Quantity
	}
	return codes, qty, nil
}
