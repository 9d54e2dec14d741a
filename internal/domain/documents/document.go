// Package documents provides the priced body shared by quotations and orders.
package documents

import (
	"context"
	"slices"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/entity"
	"salesdesk/internal/core/id"
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain/pricing"
)

// Document is a header plus an owned, ordered sequence of line items and the
// caller-supplied document discount and tax. Subtotal and Total are derived.
type Document struct {
	entity.Document

	Lines []pricing.LineItem `json:"lines"`

	Discount types.Money `json:"discount"`
	Tax      types.Money `json:"tax"`
	Subtotal types.Money `json:"subtotal"`
	Total    types.Money `json:"total"`
}

// New creates an empty document body for header.
func New(header entity.Document) Document {
	return Document{
		Document: header,
		Lines:    make([]pricing.LineItem, 0),
		Discount: types.Zero(),
		Tax:      types.Zero(),
		Subtotal: types.Zero(),
		Total:    types.Zero(),
	}
}

// AddLine appends item and recalculates totals.
func (d *Document) AddLine(item pricing.LineItem) {
	d.Lines = append(d.Lines, item)
	d.Recalculate()
}

// RemoveLine drops the line with lineID and recalculates totals.
func (d *Document) RemoveLine(lineID id.ID) error {
	i := slices.IndexFunc(d.Lines, func(l pricing.LineItem) bool { return l.LineID == lineID })
	if i < 0 {
		return apperror.NewNotFound("line item", lineID.String()).
			WithDetail("document_number", d.Number)
	}
	d.Lines = slices.Delete(d.Lines, i, i+1)
	d.Recalculate()
	return nil
}

// Line returns the line with lineID.
func (d *Document) Line(lineID id.ID) (pricing.LineItem, bool) {
	i := slices.IndexFunc(d.Lines, func(l pricing.LineItem) bool { return l.LineID == lineID })
	if i < 0 {
		return pricing.LineItem{}, false
	}
	return d.Lines[i], true
}

// SetAdjustments replaces the document-level discount and tax.
func (d *Document) SetAdjustments(discount, tax types.Money) error {
	if discount.IsNegative() {
		return apperror.NewValidation("discount cannot be negative").
			WithDetail("field", "discount")
	}
	if tax.IsNegative() {
		return apperror.NewValidation("tax cannot be negative").
			WithDetail("field", "tax")
	}
	d.Discount = discount
	d.Tax = tax
	d.Recalculate()
	return nil
}

// Recalculate derives Subtotal and Total from the lines and adjustments.
func (d *Document) Recalculate() {
	t := d.Totals()
	d.Subtotal = t.Subtotal
	d.Total = t.Total
}

// Totals computes the aggregate amounts.
func (d *Document) Totals() pricing.Totals {
	return pricing.TotalDocument(d.Lines, d.Discount, d.Tax)
}

// RequireLines fails with EmptyDocument when there is nothing to convert.
func (d *Document) RequireLines() error {
	if len(d.Lines) == 0 {
		return apperror.NewEmptyDocument(d.Number)
	}
	return nil
}

// RequireBillable fails with EmptyDocument when there is nothing to convert and
// with a validation error when the adjustments drive the total below zero.
func (d *Document) RequireBillable() error {
	if err := d.RequireLines(); err != nil {
		return err
	}
	if d.Total.IsNegative() {
		return apperror.NewValidation("document discount exceeds subtotal plus tax").
			WithDetail("document_number", d.Number).
			WithDetail("total", d.Total.String())
	}
	return nil
}

// Validate implements entity.Validatable.
func (d *Document) Validate(ctx context.Context) error {
	if err := d.Document.Validate(ctx); err != nil {
		return err
	}
	for i, line := range d.Lines {
		if line.Quantity <= 0 {
			return apperror.NewInvalidQuantity(line.Quantity).
				WithDetail("lineNo", i+1)
		}
		if line.UnitPrice.IsNegative() {
			return apperror.NewInvalidPrice(line.UnitPrice.String()).
				WithDetail("lineNo", i+1)
		}
	}
	return nil
}

// Snapshot returns an independent copy of the priced body. Lines are copied by value,
// so the copy shares nothing with d.
func (d *Document) Snapshot() Document {
	c := *d
	c.Lines = CopyLines(d.Lines)
	return c
}

// CopyLines deep-copies line items.
func CopyLines(lines []pricing.LineItem) []pricing.LineItem {
	out := make([]pricing.LineItem, len(lines))
	for i, l := range lines {
		if l.PromotionID != nil {
			pid := *l.PromotionID
			l.PromotionID = &pid
		}
		out[i] = l
	}
	return out
}
