// Package memory provides process-local repositories for the sales core.
// Every mutation made inside a transaction registers its own undo, so a failed
// transition leaves the stores exactly as they were.
package memory

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"salesdesk/internal/core/tx"
	"salesdesk/pkg/logger"
)

var tracer = otel.Tracer("salesdesk/tx")

// Compile-time check that TxManager implements tx.Manager interface.
var _ tx.Manager = (*TxManager)(nil)

// TxManager runs functions against an undo journal.
type TxManager struct{}

// NewTxManager creates a new transaction manager.
func NewTxManager() *TxManager {
	return &TxManager{}
}

// RunInTransaction executes fn within a transaction.
// If a transaction already exists in ctx, it will be reused (nested transaction).
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx.JournalFrom(ctx) != nil {
		return fn(ctx)
	}

	ctx, span := tracer.Start(ctx, "transaction")
	defer span.End()

	journal := &tx.Journal{}
	txCtx := tx.WithJournal(ctx, journal)

	if err := fn(txCtx); err != nil {
		undone := journal.Rollback()
		span.RecordError(err)
		span.SetAttributes(attribute.Int("tx.undone", undone))
		if undone > 0 {
			logger.Warn(ctx, "transaction rolled back", "undone", undone, "error", err)
		}
		return err
	}

	journal.Commit()
	span.AddEvent("commit", trace.WithAttributes(attribute.Bool("tx.committed", true)))
	return nil
}
