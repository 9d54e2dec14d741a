package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"salesdesk/internal/domain/documents"
	"salesdesk/internal/domain/documents/order"
	"salesdesk/internal/domain/documents/quotation"
	"salesdesk/internal/domain/pricing"
)

// --- Request DTOs ---

// CreateQuotationRequest is the request body for opening a quotation.
// AuthorID defaults to the acting user.
type CreateQuotationRequest struct {
	ClientID string `json:"clientId" binding:"required"`
	AuthorID string `json:"authorId"`
	Comment  string `json:"comment"`
}

// AddLineRequest appends a product to a quotation.
type AddLineRequest struct {
	ProductCode string `json:"productCode" binding:"required"`
	Quantity    int    `json:"quantity"`
}

// AdjustmentsRequest sets the document-level discount and tax.
// A nil Tax asks the server to compute it from the configured rate.
type AdjustmentsRequest struct {
	Discount decimal.Decimal  `json:"discount"`
	Tax      *decimal.Decimal `json:"tax"`
}

// PreviewQuery prices a line without touching any document.
type PreviewQuery struct {
	Product  string `form:"product" binding:"required"`
	Quantity int    `form:"quantity"`
}

// --- Response DTOs ---

// LineResponse is one priced line.
type LineResponse struct {
	LineID      string          `json:"lineId"`
	ProductCode string          `json:"productCode"`
	ProductName string          `json:"productName"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Discount    decimal.Decimal `json:"discount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	PromotionID *string         `json:"promotionId,omitempty"`
}

// FromLine creates LineResponse from a priced line item.
func FromLine(l pricing.LineItem) LineResponse {
	resp := LineResponse{
		LineID:      l.LineID.String(),
		ProductCode: l.ProductCode,
		ProductName: l.ProductName,
		Description: l.Description,
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice,
		Discount:    l.Discount,
		Subtotal:    l.Subtotal,
	}
	if l.PromotionID != nil {
		s := l.PromotionID.String()
		resp.PromotionID = &s
	}
	return resp
}

// PricedDocumentResponse contains the header, lines and totals shared by quotations and orders.
type PricedDocumentResponse struct {
	DocumentHeader
	ClientID string          `json:"clientId"`
	AuthorID string          `json:"authorId"`
	Comment  string          `json:"comment,omitempty"`
	Lines    []LineResponse  `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

func fromPricedDocument(d *documents.Document) PricedDocumentResponse {
	lines := make([]LineResponse, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, FromLine(l))
	}
	return PricedDocumentResponse{
		DocumentHeader: FromBaseDocument(d.BaseDocument),
		ClientID:       d.ClientID,
		AuthorID:       d.AuthorID,
		Comment:        d.Comment,
		Lines:          lines,
		Subtotal:       d.Subtotal,
		Discount:       d.Discount,
		Tax:            d.Tax,
		Total:          d.Total,
	}
}

// QuotationResponse is the API representation of a quotation.
type QuotationResponse struct {
	PricedDocumentResponse
	State       quotation.State `json:"state"`
	OrderID     *string         `json:"orderId,omitempty"`
	ConvertedAt *time.Time      `json:"convertedAt,omitempty"`
}

// FromQuotation creates QuotationResponse from domain entity.
func FromQuotation(q *quotation.Quotation) QuotationResponse {
	resp := QuotationResponse{
		PricedDocumentResponse: fromPricedDocument(&q.Document),
		State:                  q.State,
		ConvertedAt:            q.ConvertedAt,
	}
	if q.OrderID != nil {
		s := q.OrderID.String()
		resp.OrderID = &s
	}
	return resp
}

// OrderResponse is the API representation of an order.
type OrderResponse struct {
	PricedDocumentResponse
	State           order.State `json:"state"`
	QuotationID     string      `json:"quotationId"`
	QuotationNumber string      `json:"quotationNumber"`
	FulfilledAt     *time.Time  `json:"fulfilledAt,omitempty"`
	InvoiceID       *string     `json:"invoiceId,omitempty"`
}

// FromOrder creates OrderResponse from domain entity.
func FromOrder(o *order.Order) OrderResponse {
	resp := OrderResponse{
		PricedDocumentResponse: fromPricedDocument(&o.Document),
		State:                  o.State,
		QuotationID:            o.QuotationID.String(),
		QuotationNumber:        o.QuotationNumber,
		FulfilledAt:            o.FulfilledAt,
	}
	if o.InvoiceID != nil {
		s := o.InvoiceID.String()
		resp.InvoiceID = &s
	}
	return resp
}
