// Package invoice provides the Invoice billing document and its payments.
package invoice

import (
	"context"
	"slices"
	"time"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/entity"
	"salesdesk/internal/core/id"
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain/documents/order"
)

// State is the lifecycle state of an invoice.
type State string

const (
	StateIssued State = "ISSUED"
	StatePaid   State = "PAID"
	StateVoid   State = "VOID"
)

// DeliveryContact is where and to whom the goods are delivered.
type DeliveryContact struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// Invoice bills a fulfilled order. Total is the order total at conversion time
// and is never recomputed.
type Invoice struct {
	entity.BaseDocument

	State State `json:"state"`

	IssuedAt   time.Time `json:"issuedAt"`
	EmployeeID string    `json:"employeeId"`
	ClientID   string    `json:"clientId"`

	Delivery DeliveryContact `json:"delivery"`

	OrderID     id.ID  `json:"orderId"`
	OrderNumber string `json:"orderNumber"`

	Total types.Money `json:"total"`

	Payments []Payment `json:"payments"`

	// NeedsReconciliation is set when approved payments exceed Total
	NeedsReconciliation bool `json:"needsReconciliation"`

	PaidAt   *time.Time `json:"paidAt,omitempty"`
	VoidedAt *time.Time `json:"voidedAt,omitempty"`
}

// FromOrder issues an invoice for o carrying its locked total.
func FromOrder(o *order.Order, number, employeeID string, delivery DeliveryContact, now time.Time, actor string) *Invoice {
	if employeeID == "" {
		employeeID = o.AuthorID
	}
	return &Invoice{
		BaseDocument: entity.NewBaseDocument(number, now, actor),
		State:        StateIssued,
		IssuedAt:     now,
		EmployeeID:   employeeID,
		ClientID:     o.ClientID,
		Delivery:     delivery,
		OrderID:      o.ID,
		OrderNumber:  o.Number,
		Total:        o.Total,
		Payments:     make([]Payment, 0),
	}
}

// ApprovedTotal sums approved payments in the order they were received.
func (inv *Invoice) ApprovedTotal() types.Money {
	sum := types.Zero()
	for _, p := range inv.Payments {
		if p.Approved {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}

// Balance is the outstanding amount, negative when overpaid.
func (inv *Invoice) Balance() types.Money {
	return inv.Total.Sub(inv.ApprovedTotal())
}

// CanAcceptPayment fails with InvoiceVoid on a void invoice. Paid invoices still accept payments.
func (inv *Invoice) CanAcceptPayment() error {
	if inv.State == StateVoid {
		return apperror.NewInvoiceVoid(inv.ID.String())
	}
	return nil
}

// CanVoid allows voiding only while ISSUED.
func (inv *Invoice) CanVoid() error {
	if inv.State != StateIssued {
		return apperror.NewCannotVoidPaidInvoice(inv.ID.String(), string(inv.State))
	}
	return nil
}

// AddPayment appends p and settles the invoice if p is approved.
func (inv *Invoice) AddPayment(p Payment, now time.Time, actor string) {
	inv.Payments = append(inv.Payments, p)
	inv.settle(now)
	inv.TouchAt(now, actor)
}

// Payment returns the payment with paymentID.
func (inv *Invoice) Payment(paymentID id.ID) (Payment, bool) {
	i := slices.IndexFunc(inv.Payments, func(p Payment) bool { return p.ID == paymentID })
	if i < 0 {
		return Payment{}, false
	}
	return inv.Payments[i], true
}

// CanApprove checks that paymentID exists and is still pending.
func (inv *Invoice) CanApprove(paymentID id.ID) error {
	if err := inv.CanAcceptPayment(); err != nil {
		return err
	}
	p, ok := inv.Payment(paymentID)
	if !ok {
		return apperror.NewNotFound("payment", paymentID.String()).
			WithDetail("invoice_id", inv.ID.String())
	}
	if p.Approved {
		return apperror.NewPaymentAlreadyApproved(paymentID.String())
	}
	return nil
}

// ApprovePayment approves a pending payment and settles the invoice.
func (inv *Invoice) ApprovePayment(paymentID id.ID, now time.Time, actor string) (Payment, error) {
	if err := inv.CanApprove(paymentID); err != nil {
		return Payment{}, err
	}
	i := slices.IndexFunc(inv.Payments, func(p Payment) bool { return p.ID == paymentID })
	inv.Payments[i].approve(now)
	inv.settle(now)
	inv.TouchAt(now, actor)
	return inv.Payments[i], nil
}

// settle moves an ISSUED invoice to PAID once approved payments cover the total
// and flags overpayment.
func (inv *Invoice) settle(now time.Time) {
	approved := inv.ApprovedTotal()
	if inv.State == StateIssued && approved.GreaterThanOrEqual(inv.Total) {
		inv.State = StatePaid
		inv.PaidAt = &now
	}
	inv.NeedsReconciliation = approved.GreaterThan(inv.Total)
}

// MarkVoid voids the invoice.
func (inv *Invoice) MarkVoid(now time.Time, actor string) {
	inv.State = StateVoid
	inv.VoidedAt = &now
	inv.TouchAt(now, actor)
}

// Validate implements entity.Validatable.
func (inv *Invoice) Validate(ctx context.Context) error {
	if id.IsNil(inv.OrderID) {
		return apperror.NewValidation("order is required").
			WithDetail("field", "orderId")
	}
	return nil
}

// Clone returns a deep copy.
func (inv *Invoice) Clone() *Invoice {
	c := *inv
	c.Payments = slices.Clone(inv.Payments)
	for i := range c.Payments {
		if at := c.Payments[i].ApprovedAt; at != nil {
			v := *at
			c.Payments[i].ApprovedAt = &v
		}
	}
	if inv.PaidAt != nil {
		v := *inv.PaidAt
		c.PaidAt = &v
	}
	if inv.VoidedAt != nil {
		v := *inv.VoidedAt
		c.VoidedAt = &v
	}
	return &c
}

func (inv *Invoice) GetDocumentType() string { return "INVOICE" }
