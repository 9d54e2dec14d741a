// Package order provides the sales Order: an accepted quotation with locked prices.
package order

import (
	"context"
	"time"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/entity"
	"salesdesk/internal/core/id"
	"salesdesk/internal/domain/documents"
	"salesdesk/internal/domain/documents/quotation"
	"salesdesk/internal/domain/registers/stock"
)

// State is the lifecycle state of an order.
type State string

const (
	StateOpen     State = "OPEN"
	StateInvoiced State = "INVOICED"
)

// Order carries a snapshot of its quotation's lines. Prices are never re-resolved.
type Order struct {
	documents.Document

	State State `json:"state"`

	QuotationID     id.ID  `json:"quotationId"`
	QuotationNumber string `json:"quotationNumber"`

	// FulfilledAt is set once stock has been decremented for every line
	FulfilledAt *time.Time `json:"fulfilledAt,omitempty"`

	// InvoiceID is set once the order is invoiced
	InvoiceID *id.ID `json:"invoiceId,omitempty"`
}

// FromQuotation creates an OPEN order from a snapshot of q: lines, discount and tax.
func FromQuotation(q *quotation.Quotation, number string, now time.Time, actor string) *Order {
	body := q.Snapshot()
	body.Document = entity.NewDocument(number, q.ClientID, q.AuthorID, now, actor)
	body.Comment = q.Comment
	body.Recalculate()

	return &Order{
		Document:        body,
		State:           StateOpen,
		QuotationID:     q.ID,
		QuotationNumber: q.Number,
	}
}

// IsFulfilled reports whether stock was decremented for this order.
func (o *Order) IsFulfilled() bool {
	return o.FulfilledAt != nil
}

// CanFulfill checks the preconditions of fulfillment.
func (o *Order) CanFulfill() error {
	if o.State == StateInvoiced {
		return o.alreadyInvoiced()
	}
	if o.IsFulfilled() {
		return apperror.NewAlreadyFulfilled(o.Number)
	}
	return o.RequireBillable()
}

// CanInvoice checks the preconditions of conversion to an invoice.
func (o *Order) CanInvoice() error {
	if o.State == StateInvoiced {
		return o.alreadyInvoiced()
	}
	if !o.IsFulfilled() {
		return apperror.NewNotFulfilled(o.Number)
	}
	return nil
}

func (o *Order) alreadyInvoiced() error {
	invoiceID := ""
	if o.InvoiceID != nil {
		invoiceID = o.InvoiceID.String()
	}
	return apperror.NewAlreadyInvoiced(o.Number, invoiceID)
}

// StockLines lists the inventory movement of fulfillment, in line order.
func (o *Order) StockLines() []stock.Line {
	lines := make([]stock.Line, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, stock.Line{ProductCode: l.ProductCode, Quantity: l.Quantity})
	}
	return lines
}

// MarkFulfilled records that stock was decremented.
func (o *Order) MarkFulfilled(now time.Time, actor string) {
	o.FulfilledAt = &now
	o.TouchAt(now, actor)
}

// MarkInvoiced records the resulting invoice.
func (o *Order) MarkInvoiced(invoiceID id.ID, now time.Time, actor string) {
	o.State = StateInvoiced
	o.InvoiceID = &invoiceID
	o.TouchAt(now, actor)
}

// Validate implements entity.Validatable.
func (o *Order) Validate(ctx context.Context) error {
	if err := o.Document.Validate(ctx); err != nil {
		return err
	}
	if id.IsNil(o.QuotationID) {
		return apperror.NewValidation("quotation is required").
			WithDetail("field", "quotationId")
	}
	return nil
}

// Clone returns a deep copy.
func (o *Order) Clone() *Order {
	c := *o
	c.Document = o.Snapshot()
	if o.FulfilledAt != nil {
		v := *o.FulfilledAt
		c.FulfilledAt = &v
	}
	if o.InvoiceID != nil {
		v := *o.InvoiceID
		c.InvoiceID = &v
	}
	return &c
}

func (o *Order) GetDocumentType() string { return "ORDER" }
