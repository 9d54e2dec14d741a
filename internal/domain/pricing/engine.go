// Package pricing computes line-item subtotals and document totals.
// Every function here is pure and safe for concurrent use.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/id"
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain/catalogs/product"
	"salesdesk/internal/domain/promotion"
)

var hundred = decimal.NewFromInt(100)

// LineItem is one priced product row of a document.
// Subtotal always equals max(0, Quantity*UnitPrice - Discount).
type LineItem struct {
	LineID      id.ID       `json:"lineId"`
	ProductCode string      `json:"productCode"`
	ProductName string      `json:"productName"`
	Description string      `json:"description,omitempty"`
	Quantity    int         `json:"quantity"`
	UnitPrice   types.Money `json:"unitPrice"`
	Discount    types.Money `json:"discount"`
	Subtotal    types.Money `json:"subtotal"`

	// PromotionID is the promotion that produced Discount, nil when none applied.
	PromotionID *id.ID `json:"promotionId,omitempty"`
}

// Gross is quantity times unit price before any discount.
func (l LineItem) Gross() types.Money {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals are the aggregate amounts of a document.
type Totals struct {
	Subtotal types.Money `json:"subtotal"`
	Discount types.Money `json:"discount"`
	Tax      types.Money `json:"tax"`
	Total    types.Money `json:"total"`
}

// PriceLineItem prices quantity units of p at unitPrice under promo (nil for none).
// A discount larger than the gross amount is capped so the subtotal never goes negative.
func PriceLineItem(p *product.Product, quantity int, unitPrice types.Money, promo *promotion.Promotion) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, apperror.NewInvalidQuantity(quantity).WithDetail("product_code", p.Code)
	}
	if unitPrice.IsNegative() {
		return LineItem{}, apperror.NewInvalidPrice(unitPrice.String()).WithDetail("product_code", p.Code)
	}

	item := LineItem{
		LineID:      id.New(),
		ProductCode: p.Code,
		ProductName: p.Name,
		Description: p.Describe(),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Discount:    types.Zero(),
	}
	gross := item.Gross()

	if promo != nil {
		eligible, err := promo.Eligible(quantity, unitPrice)
		if err != nil {
			return LineItem{}, apperror.NewInternal(fmt.Errorf("promotion %s: %w", promo.ID, err))
		}
		if eligible {
			item.Discount = decimal.Min(Discount(promo, quantity, unitPrice), gross)
			pid := promo.ID
			item.PromotionID = &pid
		}
	}

	item.Subtotal = types.ClampZero(gross.Sub(item.Discount))
	return item, nil
}

// Discount is the raw discount promo grants on quantity units at unitPrice, before capping.
func Discount(promo *promotion.Promotion, quantity int, unitPrice types.Money) types.Money {
	q := decimal.NewFromInt(int64(quantity))

	switch promo.Kind {
	case promotion.KindPercentage:
		return unitPrice.Mul(q).Mul(promo.Magnitude).Div(hundred)
	case promotion.KindTwoForOne:
		return unitPrice.Mul(decimal.NewFromInt(int64(quantity / 2)))
	case promotion.KindFixedPrice:
		return types.ClampZero(unitPrice.Sub(promo.Magnitude).Mul(q))
	}
	return types.Zero()
}

// TotalDocument folds caller-supplied discount and tax into the sum of line subtotals.
// Lines are summed in slice order.
func TotalDocument(lines []LineItem, discount, tax types.Money) Totals {
	subtotal := types.Zero()
	for _, l := range lines {
		subtotal = subtotal.Add(l.Subtotal)
	}

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    subtotal.Sub(discount).Add(tax),
	}
}
