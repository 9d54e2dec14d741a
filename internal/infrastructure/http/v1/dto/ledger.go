package dto

import (
	"github.com/shopspring/decimal"

	"salesdesk/internal/domain/ledger"
)

// LedgerResponse lists entries with their running balance (debits minus credits).
type LedgerResponse struct {
	Entries []ledger.Entry  `json:"entries"`
	Balance decimal.Decimal `json:"balance"`
}

// NewLedgerResponse sums entries into a response.
func NewLedgerResponse(entries []ledger.Entry) LedgerResponse {
	balance := decimal.Zero
	for _, e := range entries {
		balance = balance.Add(e.Signed())
	}
	if entries == nil {
		entries = []ledger.Entry{}
	}
	return LedgerResponse{Entries: entries, Balance: balance}
}
