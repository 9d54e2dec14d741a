package invoice

import (
	"strings"
	"time"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/id"
	"salesdesk/internal/core/types"
)

// Method is how a payment was made.
type Method string

const (
	MethodCash       Method = "CASH"
	MethodCreditCard Method = "CREDIT_CARD"
	MethodDebitCard  Method = "DEBIT_CARD"
	MethodTransfer   Method = "TRANSFER"
	MethodCheck      Method = "CHECK"
)

// ParseMethod validates a method name, case-insensitively.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	switch m {
	case MethodCash, MethodCreditCard, MethodDebitCard, MethodTransfer, MethodCheck:
		return m, nil
	}
	return "", apperror.NewValidation("invalid payment method").
		WithDetail("field", "method").
		WithDetail("value", s)
}

// RequiresClearance reports whether payments by m stay pending until approved.
func (m Method) RequiresClearance() bool {
	return m == MethodCheck
}

// Payment is money received against an invoice.
type Payment struct {
	ID         id.ID       `json:"id"`
	InvoiceID  id.ID       `json:"invoiceId"`
	Amount     types.Money `json:"amount"`
	Method     Method      `json:"method"`
	Reference  string      `json:"reference,omitempty"`
	ReceivedAt time.Time   `json:"receivedAt"`
	Approved   bool        `json:"approved"`
	ApprovedAt *time.Time  `json:"approvedAt,omitempty"`
	Notes      string      `json:"notes,omitempty"`
}

// NewPayment creates a payment. Methods that need clearance start unapproved.
func NewPayment(invoiceID id.ID, amount types.Money, method Method, reference, notes string, now time.Time) (Payment, error) {
	if !amount.IsPositive() {
		return Payment{}, apperror.NewInvalidAmount(amount.String())
	}
	if _, err := ParseMethod(string(method)); err != nil {
		return Payment{}, err
	}

	p := Payment{
		ID:         id.New(),
		InvoiceID:  invoiceID,
		Amount:     amount,
		Method:     method,
		Reference:  reference,
		ReceivedAt: now,
		Notes:      notes,
	}
	if !method.RequiresClearance() {
		p.approve(now)
	}
	return p, nil
}

func (p *Payment) approve(now time.Time) {
	p.Approved = true
	p.ApprovedAt = &now
}
