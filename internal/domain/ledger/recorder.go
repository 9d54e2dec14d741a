package ledger

import (
	"context"
	"fmt"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/clock"
	appctx "salesdesk/internal/core/context"
	"salesdesk/internal/core/id"
	"salesdesk/internal/core/types"
	"salesdesk/pkg/logger"
)

// Journal is append-only entry storage.
type Journal interface {
	Append(ctx context.Context, e Entry) error
	// All returns entries in recording order.
	All(ctx context.Context) ([]Entry, error)
	ByDocument(ctx context.Context, number string) ([]Entry, error)
}

// Recorder stamps and appends ledger entries.
type Recorder struct {
	journal Journal
	clock   clock.Clock
}

// NewRecorder creates a recorder over journal.
func NewRecorder(journal Journal, clk clock.Clock) *Recorder {
	return &Recorder{journal: journal, clock: clk}
}

// Record appends one entry. The acting user is taken from ctx.
func (r *Recorder) Record(ctx context.Context, req Request) (Entry, error) {
	if req.Direction != Debit && req.Direction != Credit {
		return Entry{}, apperror.NewValidation("invalid direction").
			WithDetail("field", "direction").
			WithDetail("value", string(req.Direction))
	}
	if req.Amount.IsNegative() {
		return Entry{}, apperror.NewInvalidAmount(req.Amount.String())
	}
	if req.DocumentNumber == "" {
		return Entry{}, apperror.NewValidation("document number is required").
			WithDetail("field", "documentNumber")
	}

	e := Entry{
		ID:             id.New(),
		RecordedAt:     r.clock.Now(),
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		Description:    req.Description,
		Amount:         req.Amount,
		Direction:      req.Direction,
		Actor:          appctx.Actor(ctx),
		RelatedEntity:  req.RelatedEntity,
		Reference:      req.Reference,
	}

	if err := r.journal.Append(ctx, e); err != nil {
		return Entry{}, fmt.Errorf("append ledger entry: %w", err)
	}

	logger.Info(ctx, "ledger entry recorded",
		"entry_id", e.ID,
		"document_type", e.DocumentType,
		"document_number", e.DocumentNumber,
		"direction", e.Direction,
		"amount", e.Amount,
	)
	return e, nil
}

// Entries returns every entry in recording order.
func (r *Recorder) Entries(ctx context.Context) ([]Entry, error) {
	return r.journal.All(ctx)
}

// EntriesFor returns the entries of one document.
func (r *Recorder) EntriesFor(ctx context.Context, documentNumber string) ([]Entry, error) {
	return r.journal.ByDocument(ctx, documentNumber)
}

// Balance is total debits minus total credits.
func (r *Recorder) Balance(ctx context.Context) (types.Money, error) {
	entries, err := r.journal.All(ctx)
	if err != nil {
		return types.Zero(), err
	}
	sum := types.Zero()
	for _, e := range entries {
		sum = sum.Add(e.Signed())
	}
	return sum, nil
}
