// Package lifecycle orchestrates the sales document state machine:
// quotation authoring, conversion to order, fulfillment, invoicing, payments and voids.
// Every transition is all-or-nothing across documents, inventory and ledger.
package lifecycle

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"salesdesk/internal/core/clock"
	"salesdesk/internal/core/id"
	"salesdesk/internal/core/numerator"
	"salesdesk/internal/core/tx"
	"salesdesk/internal/domain/catalogs/product"
	"salesdesk/internal/domain/documents/invoice"
	"salesdesk/internal/domain/documents/order"
	"salesdesk/internal/domain/documents/quotation"
	"salesdesk/internal/domain/ledger"
	"salesdesk/internal/domain/promotion"
	"salesdesk/internal/domain/registers/stock"
	"salesdesk/pkg/keylock"
)

var tracer = otel.Tracer("salesdesk/lifecycle")

// Deps are the collaborators of the lifecycle service.
type Deps struct {
	Quotations quotation.Repository
	Orders     order.Repository
	Invoices   invoice.Repository

	Catalog    product.Provider
	Inventory  stock.Provider
	Promotions promotion.Provider

	Numerator numerator.Generator
	Ledger    *ledger.Recorder
	TxManager tx.Manager
	Clock     clock.Clock
}

// Options tune numbering.
type Options struct {
	// QuotationStrategy numbers quotations. Orders and invoices are always strict.
	QuotationStrategy numerator.Strategy
	ResetPeriod       numerator.ResetPeriod
}

// DefaultOptions returns cached quotation numbering with yearly reset.
func DefaultOptions() Options {
	return Options{
		QuotationStrategy: quotation.NumeratorStrategy,
		ResetPeriod:       numerator.ResetYearly,
	}
}

// Service provides the document lifecycle operations.
// Operations on the same document are serialized by a per-document lock.
type Service struct {
	quotations quotation.Repository
	orders     order.Repository
	invoices   invoice.Repository

	catalog   product.Provider
	inventory stock.Provider
	resolver  *promotion.Resolver

	numerator numerator.Generator
	ledger    *ledger.Recorder
	txManager tx.Manager
	clock     clock.Clock

	opts  Options
	locks *keylock.Map[string]
}

// NewService creates a new lifecycle service.
func NewService(deps Deps, opts Options) *Service {
	clk := deps.Clock
	if clk == nil {
		clk = clock.System{}
	}
	if opts.ResetPeriod == "" {
		opts.ResetPeriod = numerator.ResetYearly
	}

	return &Service{
		quotations: deps.Quotations,
		orders:     deps.Orders,
		invoices:   deps.Invoices,
		catalog:    deps.Catalog,
		inventory:  deps.Inventory,
		resolver:   promotion.NewResolver(deps.Promotions),
		numerator:  deps.Numerator,
		ledger:     deps.Ledger,
		txManager:  deps.TxManager,
		clock:      clk,
		opts:       opts,
		locks:      keylock.New[string](),
	}
}

// lock serializes work on one document.
func (s *Service) lock(docID id.ID) func() {
	return s.locks.Lock(docID.String())
}

func (s *Service) startSpan(ctx context.Context, name string, docID id.ID) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attribute.String("document.id", docID.String())))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
	}
	span.End()
}

// nextNumber reserves a document number dated at the service clock.
func (s *Service) nextNumber(ctx context.Context, prefix string, strategy numerator.Strategy) (string, error) {
	cfg := numerator.DefaultConfig(prefix)
	cfg.ResetPeriod = s.opts.ResetPeriod

	number, err := s.numerator.GetNextNumber(ctx, cfg, &numerator.Options{Strategy: strategy}, s.clock.Now())
	if err != nil {
		return "", fmt.Errorf("generate %s number: %w", prefix, err)
	}
	return number, nil
}

// Quotation returns a quotation by id.
func (s *Service) Quotation(ctx context.Context, quotationID id.ID) (*quotation.Quotation, error) {
	return s.quotations.GetByID(ctx, quotationID)
}

// Order returns an order by id.
func (s *Service) Order(ctx context.Context, orderID id.ID) (*order.Order, error) {
	return s.orders.GetByID(ctx, orderID)
}

// Invoice returns an invoice by id.
func (s *Service) Invoice(ctx context.Context, invoiceID id.ID) (*invoice.Invoice, error) {
	return s.invoices.GetByID(ctx, invoiceID)
}

// Quotations lists quotations in creation order.
func (s *Service) Quotations(ctx context.Context) ([]*quotation.Quotation, error) {
	return s.quotations.List(ctx)
}

// Orders lists orders in creation order.
func (s *Service) Orders(ctx context.Context) ([]*order.Order, error) {
	return s.orders.List(ctx)
}

// Invoices lists invoices in creation order.
func (s *Service) Invoices(ctx context.Context) ([]*invoice.Invoice, error) {
	return s.invoices.List(ctx)
}
