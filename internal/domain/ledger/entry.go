// Package ledger records immutable accounting entries for financial events.
package ledger

import (
	"time"

	"salesdesk/internal/core/id"
	"salesdesk/internal/core/types"
)

// Direction is the movement side of an entry.
type Direction string

const (
	Debit  Direction = "DEBIT"
	Credit Direction = "CREDIT"
)

// DocType tags the document an entry was recorded for.
type DocType string

const (
	DocOrder   DocType = "ORDER"
	DocInvoice DocType = "INVOICE"
	DocPayment DocType = "PAYMENT"
)

// Entry is an accounting entry. Entries are never edited or deleted; corrections are new entries.
type Entry struct {
	ID             id.ID       `json:"id"`
	RecordedAt     time.Time   `json:"recordedAt"`
	DocumentType   DocType     `json:"documentType"`
	DocumentNumber string      `json:"documentNumber"`
	Description    string      `json:"description"`
	Amount         types.Money `json:"amount"`
	Direction      Direction   `json:"direction"`
	Actor          string      `json:"actor"`
	RelatedEntity  string      `json:"relatedEntity,omitempty"`
	Reference      string      `json:"reference,omitempty"`
}

// Signed returns the amount as a debit-positive value.
func (e Entry) Signed() types.Money {
	if e.Direction == Credit {
		return e.Amount.Neg()
	}
	return e.Amount
}

// Request describes an entry to record.
type Request struct {
	DocumentType   DocType
	DocumentNumber string
	Description    string
	Amount         types.Money
	Direction      Direction
	RelatedEntity  string
	Reference      string
}
