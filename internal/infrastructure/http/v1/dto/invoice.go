package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"salesdesk/internal/domain/documents/invoice"
)

// --- Request DTOs ---

// CreateInvoiceRequest is the request body for invoicing a fulfilled order.
// EmployeeID defaults to the order author.
type CreateInvoiceRequest struct {
	EmployeeID string                  `json:"employeeId"`
	Delivery   invoice.DeliveryContact `json:"delivery"`
}

// RecordPaymentRequest is the request body for recording a payment.
type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method" binding:"required"`
	Reference string          `json:"reference"`
	Notes     string          `json:"notes"`
}

// --- Response DTOs ---

// PaymentResponse is the API representation of a payment.
type PaymentResponse struct {
	ID         string          `json:"id"`
	InvoiceID  string          `json:"invoiceId"`
	Amount     decimal.Decimal `json:"amount"`
	Method     invoice.Method  `json:"method"`
	Reference  string          `json:"reference,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	ReceivedAt time.Time       `json:"receivedAt"`
	Approved   bool            `json:"approved"`
	ApprovedAt *time.Time      `json:"approvedAt,omitempty"`
}

// FromPayment creates PaymentResponse from domain value.
func FromPayment(p invoice.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID.String(),
		InvoiceID:  p.InvoiceID.String(),
		Amount:     p.Amount,
		Method:     p.Method,
		Reference:  p.Reference,
		Notes:      p.Notes,
		ReceivedAt: p.ReceivedAt,
		Approved:   p.Approved,
		ApprovedAt: p.ApprovedAt,
	}
}

// InvoiceResponse is the API representation of an invoice.
type InvoiceResponse struct {
	DocumentHeader
	State               invoice.State           `json:"state"`
	IssuedAt            time.Time               `json:"issuedAt"`
	EmployeeID          string                  `json:"employeeId"`
	ClientID            string                  `json:"clientId"`
	Delivery            invoice.DeliveryContact `json:"delivery"`
	OrderID             string                  `json:"orderId"`
	OrderNumber         string                  `json:"orderNumber"`
	Total               decimal.Decimal         `json:"total"`
	Paid                decimal.Decimal         `json:"paid"`
	Balance             decimal.Decimal         `json:"balance"`
	NeedsReconciliation bool                    `json:"needsReconciliation"`
	Payments            []PaymentResponse       `json:"payments"`
	PaidAt              *time.Time              `json:"paidAt,omitempty"`
	VoidedAt            *time.Time              `json:"voidedAt,omitempty"`
}

// FromInvoice creates InvoiceResponse from domain entity.
func FromInvoice(inv *invoice.Invoice) InvoiceResponse {
	payments := make([]PaymentResponse, 0, len(inv.Payments))
	for _, p := range inv.Payments {
		payments = append(payments, FromPayment(p))
	}
	return InvoiceResponse{
		DocumentHeader:      FromBaseDocument(inv.BaseDocument),
		State:               inv.State,
		IssuedAt:            inv.IssuedAt,
		EmployeeID:          inv.EmployeeID,
		ClientID:            inv.ClientID,
		Delivery:            inv.Delivery,
		OrderID:             inv.OrderID.String(),
		OrderNumber:         inv.OrderNumber,
		Total:               inv.Total,
		Paid:                inv.ApprovedTotal(),
		Balance:             inv.Balance(),
		NeedsReconciliation: inv.NeedsReconciliation,
		Payments:            payments,
		PaidAt:              inv.PaidAt,
		VoidedAt:            inv.VoidedAt,
	}
}

// PaymentResultResponse returns the touched payment alongside its invoice.
type PaymentResultResponse struct {
	Payment PaymentResponse `json:"payment"`
	Invoice InvoiceResponse `json:"invoice"`
}
