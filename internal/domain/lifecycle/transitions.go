package lifecycle

import (
	"context"
	"fmt"

	appctx "salesdesk/internal/core/context"
	"salesdesk/internal/core/id"
	"salesdesk/internal/domain/documents/invoice"
	"salesdesk/internal/domain/documents/order"
	"salesdesk/internal/domain/ledger"
	"salesdesk/pkg/logger"
)

// ConvertQuotationToOrder locks the quotation's prices into a new OPEN order.
// No ledger entry is recorded: nothing of value moves.
func (s *Service) ConvertQuotationToOrder(ctx context.Context, quotationID id.ID) (o *order.Order, err error) {
	ctx, span := s.startSpan(ctx, "lifecycle.convert_quotation", quotationID)
	defer func() { endSpan(span, err) }()

	unlock := s.lock(quotationID)
	defer unlock()

	q, err := s.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	ctx = appctx.WithDocument(ctx, q.Number)
	if err := q.CanConvert(); err != nil {
		return nil, err
	}

	actor := appctx.Actor(ctx)
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		number, err := s.nextNumber(ctx, order.NumberPrefix, order.NumeratorStrategy)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		o = order.FromQuotation(q, number, now, actor)
		if err := s.orders.Create(ctx, o); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		q.MarkConverted(o.ID, now, actor)
		if err := s.quotations.Update(ctx, q); err != nil {
			return fmt.Errorf("update quotation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "quotation converted to order",
		"quotation_number", q.Number,
		"order_id", o.ID,
		"order_number", o.Number,
		"total", o.Total,
	)
	return o, nil
}

// FulfillOrder decrements stock for every line as one unit and records the stock value.
// On InsufficientStock nothing changes.
func (s *Service) FulfillOrder(ctx context.Context, orderID id.ID) (o *order.Order, err error) {
	ctx, span := s.startSpan(ctx, "lifecycle.fulfill_order", orderID)
	defer func() { endSpan(span, err) }()

	unlock := s.lock(orderID)
	defer unlock()

	o, err = s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	ctx = appctx.WithDocument(ctx, o.Number)
	if err := o.CanFulfill(); err != nil {
		return nil, err
	}

	actor := appctx.Actor(ctx)
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.inventory.Decrement(ctx, o.StockLines()); err != nil {
			return err
		}

		o.MarkFulfilled(s.clock.Now(), actor)
		if err := s.orders.Update(ctx, o); err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		_, err := s.ledger.Record(ctx, ledger.Request{
			DocumentType:   ledger.DocOrder,
			DocumentNumber: o.Number,
			Description:    fmt.Sprintf("Stock issued for order %s", o.Number),
			Amount:         o.Subtotal,
			Direction:      ledger.Credit,
			RelatedEntity:  "inventory",
			Reference:      o.QuotationNumber,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "order fulfilled", "order_number", o.Number, "lines", len(o.Lines))
	return o, nil
}

// InvoiceRequest carries the invoice fields that do not come from the order.
type InvoiceRequest struct {
	// EmployeeID is the responsible employee, defaulting to the order author.
	EmployeeID string
	Delivery   invoice.DeliveryContact
}

// ConvertOrderToInvoice issues an invoice for a fulfilled order at the order's locked total.
func (s *Service) ConvertOrderToInvoice(ctx context.Context, orderID id.ID, req InvoiceRequest) (inv *invoice.Invoice, err error) {
	ctx, span := s.startSpan(ctx, "lifecycle.invoice_order", orderID)
	defer func() { endSpan(span, err) }()

	unlock := s.lock(orderID)
	defer unlock()

	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	ctx = appctx.WithDocument(ctx, o.Number)
	if err := o.CanInvoice(); err != nil {
		return nil, err
	}

	actor := appctx.Actor(ctx)
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		number, err := s.nextNumber(ctx, invoice.NumberPrefix, invoice.NumeratorStrategy)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		inv = invoice.FromOrder(o, number, req.EmployeeID, req.Delivery, now, actor)
		if err := inv.Validate(ctx); err != nil {
			return err
		}
		if err := s.invoices.Create(ctx, inv); err != nil {
			return fmt.Errorf("create invoice: %w", err)
		}

		o.MarkInvoiced(inv.ID, now, actor)
		if err := s.orders.Update(ctx, o); err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		_, err = s.ledger.Record(ctx, ledger.Request{
			DocumentType:   ledger.DocInvoice,
			DocumentNumber: inv.Number,
			Description:    fmt.Sprintf("Invoice %s issued for order %s", inv.Number, o.Number),
			Amount:         inv.Total,
			Direction:      ledger.Debit,
			RelatedEntity:  "client:" + inv.ClientID,
			Reference:      o.Number,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "order invoiced",
		"order_number", o.Number,
		"invoice_id", inv.ID,
		"invoice_number", inv.Number,
		"total", inv.Total,
	)
	return inv, nil
}
