// Package quotation provides the Quotation document: a priced proposal to a client.
package quotation

import (
	"context"
	"time"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/entity"
	"salesdesk/internal/core/id"
	"salesdesk/internal/domain/documents"
)

// State is the lifecycle state of a quotation.
type State string

const (
	StateDraft     State = "DRAFT"
	StateConverted State = "CONVERTED"
)

// Quotation is editable while DRAFT. Converting it locks it for good.
type Quotation struct {
	documents.Document

	State State `json:"state"`

	// OrderID is set once the quotation is converted
	OrderID     *id.ID     `json:"orderId,omitempty"`
	ConvertedAt *time.Time `json:"convertedAt,omitempty"`
}

// New creates a DRAFT quotation.
func New(number, clientID, authorID string, now time.Time, actor string) *Quotation {
	return &Quotation{
		Document: documents.New(entity.NewDocument(number, clientID, authorID, now, actor)),
		State:    StateDraft,
	}
}

// CanModify fails with DocumentLocked once the quotation has left DRAFT.
func (q *Quotation) CanModify() error {
	if q.State != StateDraft {
		return apperror.NewDocumentLocked(q.Number, string(q.State))
	}
	return nil
}

// CanConvert checks the preconditions of conversion to an order.
func (q *Quotation) CanConvert() error {
	if q.State == StateConverted {
		orderID := ""
		if q.OrderID != nil {
			orderID = q.OrderID.String()
		}
		return apperror.NewAlreadyConverted(q.Number, orderID)
	}
	return q.RequireBillable()
}

// MarkConverted records the resulting order.
func (q *Quotation) MarkConverted(orderID id.ID, now time.Time, actor string) {
	q.State = StateConverted
	q.OrderID = &orderID
	q.ConvertedAt = &now
	q.TouchAt(now, actor)
}

// Validate implements entity.Validatable.
func (q *Quotation) Validate(ctx context.Context) error {
	if err := q.Document.Validate(ctx); err != nil {
		return err
	}
	if q.State != StateDraft && q.State != StateConverted {
		return apperror.NewValidation("invalid quotation state").
			WithDetail("field", "state").
			WithDetail("value", string(q.State))
	}
	return nil
}

// Clone returns a deep copy.
func (q *Quotation) Clone() *Quotation {
	c := *q
	c.Document = q.Snapshot()
	if q.OrderID != nil {
		v := *q.OrderID
		c.OrderID = &v
	}
	if q.ConvertedAt != nil {
		v := *q.ConvertedAt
		c.ConvertedAt = &v
	}
	return &c
}

func (q *Quotation) GetDocumentType() string { return "QUOTATION" }
