package lifecycle

import (
	"context"
	"fmt"

	appctx "salesdesk/internal/core/context"
	"salesdesk/internal/core/id"
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain/documents/invoice"
	"salesdesk/internal/domain/ledger"
	"salesdesk/pkg/logger"
)

// PaymentRequest describes money received against an invoice.
type PaymentRequest struct {
	Amount    types.Money
	Method    invoice.Method
	Reference string
	Notes     string
}

// RecordPayment records a payment. Partial payments and overpayments are accepted;
// the invoice becomes PAID once approved payments cover its total.
// Payments that need clearance are stored pending and reach the ledger on approval.
func (s *Service) RecordPayment(ctx context.Context, invoiceID id.ID, req PaymentRequest) (inv *invoice.Invoice, p invoice.Payment, err error) {
	ctx, span := s.startSpan(ctx, "lifecycle.record_payment", invoiceID)
	defer func() { endSpan(span, err) }()

	unlock := s.lock(invoiceID)
	defer unlock()

	inv, err = s.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, invoice.Payment{}, err
	}
	ctx = appctx.WithDocument(ctx, inv.Number)
	if err := inv.CanAcceptPayment(); err != nil {
		return nil, invoice.Payment{}, err
	}

	now := s.clock.Now()
	p, err = invoice.NewPayment(inv.ID, req.Amount, req.Method, req.Reference, req.Notes, now)
	if err != nil {
		return nil, invoice.Payment{}, err
	}

	before := inv.State
	actor := appctx.Actor(ctx)
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		inv.AddPayment(p, now, actor)
		if err := s.invoices.Update(ctx, inv); err != nil {
			return fmt.Errorf("update invoice: %w", err)
		}
		if !p.Approved {
			return nil
		}
		return s.recordPaymentEntry(ctx, inv, p)
	})
	if err != nil {
		return nil, invoice.Payment{}, err
	}

	logger.Info(ctx, "payment recorded",
		"invoice_number", inv.Number,
		"payment_id", p.ID,
		"amount", p.Amount,
		"method", p.Method,
		"approved", p.Approved,
	)
	s.logSettlement(ctx, inv, before)
	return inv, p, nil
}

// ApprovePayment clears a pending payment and records it in the ledger.
func (s *Service) ApprovePayment(ctx context.Context, invoiceID, paymentID id.ID) (inv *invoice.Invoice, p invoice.Payment, err error) {
	ctx, span := s.startSpan(ctx, "lifecycle.approve_payment", invoiceID)
	defer func() { endSpan(span, err) }()

	unlock := s.lock(invoiceID)
	defer unlock()

	inv, err = s.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, invoice.Payment{}, err
	}
	ctx = appctx.WithDocument(ctx, inv.Number)
	if err := inv.CanApprove(paymentID); err != nil {
		return nil, invoice.Payment{}, err
	}

	before := inv.State
	actor := appctx.Actor(ctx)
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		p, err = inv.ApprovePayment(paymentID, s.clock.Now(), actor)
		if err != nil {
			return err
		}
		if err := s.invoices.Update(ctx, inv); err != nil {
			return fmt.Errorf("update invoice: %w", err)
		}
		return s.recordPaymentEntry(ctx, inv, p)
	})
	if err != nil {
		return nil, invoice.Payment{}, err
	}

	logger.Info(ctx, "payment approved", "invoice_number", inv.Number, "payment_id", p.ID, "amount", p.Amount)
	s.logSettlement(ctx, inv, before)
	return inv, p, nil
}

func (s *Service) recordPaymentEntry(ctx context.Context, inv *invoice.Invoice, p invoice.Payment) error {
	_, err := s.ledger.Record(ctx, ledger.Request{
		DocumentType:   ledger.DocPayment,
		DocumentNumber: inv.Number,
		Description:    fmt.Sprintf("Payment received by %s", p.Method),
		Amount:         p.Amount,
		Direction:      ledger.Credit,
		RelatedEntity:  "invoice:" + inv.Number,
		Reference:      p.ID.String(),
	})
	return err
}

func (s *Service) logSettlement(ctx context.Context, inv *invoice.Invoice, before invoice.State) {
	if before != invoice.StatePaid && inv.State == invoice.StatePaid {
		logger.Info(ctx, "invoice paid", "invoice_number", inv.Number, "total", inv.Total)
	}
	if inv.NeedsReconciliation {
		logger.Warn(ctx, "invoice overpaid, needs reconciliation",
			"invoice_number", inv.Number,
			"total", inv.Total,
			"approved", inv.ApprovedTotal(),
		)
	}
}

// VoidInvoice voids an ISSUED invoice and records an offsetting credit of its total.
func (s *Service) VoidInvoice(ctx context.Context, invoiceID id.ID) (inv *invoice.Invoice, err error) {
	ctx, span := s.startSpan(ctx, "lifecycle.void_invoice", invoiceID)
	defer func() { endSpan(span, err) }()

	unlock := s.lock(invoiceID)
	defer unlock()

	inv, err = s.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	ctx = appctx.WithDocument(ctx, inv.Number)
	if err := inv.CanVoid(); err != nil {
		return nil, err
	}

	actor := appctx.Actor(ctx)
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		inv.MarkVoid(s.clock.Now(), actor)
		if err := s.invoices.Update(ctx, inv); err != nil {
			return fmt.Errorf("update invoice: %w", err)
		}

		_, err := s.ledger.Record(ctx, ledger.Request{
			DocumentType:   ledger.DocInvoice,
			DocumentNumber: inv.Number,
			Description:    fmt.Sprintf("Invoice %s voided", inv.Number),
			Amount:         inv.Total,
			Direction:      ledger.Credit,
			RelatedEntity:  "client:" + inv.ClientID,
			Reference:      inv.OrderNumber,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "invoice voided", "invoice_number", inv.Number, "total", inv.Total)
	return inv, nil
}
