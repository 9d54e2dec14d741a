// Package tx provides transaction management abstractions.
// Domain services run every multi-entity transition through a Manager, so a
// failure part way through leaves documents, inventory and ledger untouched.
package tx

import (
	"context"
	"sync"
)

// Manager defines the contract for transaction management.
//
// Domain services depend on this interface, not concrete implementations.
// The in-process implementation lives in infrastructure/storage/memory.
type Manager interface {
	// RunInTransaction executes fn within a transaction.
	// If fn returns an error, every mutation registered with OnRollback is undone.
	//
	// Nested calls reuse the existing transaction from context.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Journal collects compensating actions for the mutations of one transaction.
type Journal struct {
	mu    sync.Mutex
	undos []func()
	after []func()
}

// OnRollback registers fn to run if the transaction fails.
func (j *Journal) OnRollback(fn func()) {
	j.mu.Lock()
	j.undos = append(j.undos, fn)
	j.mu.Unlock()
}

// OnComplete registers fn to run once the transaction has committed or rolled back.
func (j *Journal) OnComplete(fn func()) {
	j.mu.Lock()
	j.after = append(j.after, fn)
	j.mu.Unlock()
}

// Rollback runs the registered actions in reverse order, then the completion
// hooks, and clears the journal.
func (j *Journal) Rollback() int {
	j.mu.Lock()
	undos, after := j.undos, j.after
	j.undos, j.after = nil, nil
	j.mu.Unlock()

	for i := len(undos) - 1; i >= 0; i-- {
		undos[i]()
	}
	runReverse(after)
	return len(undos)
}

// Commit discards the registered actions and runs the completion hooks.
func (j *Journal) Commit() {
	j.mu.Lock()
	after := j.after
	j.undos, j.after = nil, nil
	j.mu.Unlock()

	runReverse(after)
}

func runReverse(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

type journalKey struct{}

// WithJournal attaches j to ctx.
func WithJournal(ctx context.Context, j *Journal) context.Context {
	return context.WithValue(ctx, journalKey{}, j)
}

// JournalFrom returns the active journal, or nil outside a transaction.
func JournalFrom(ctx context.Context) *Journal {
	if j, ok := ctx.Value(journalKey{}).(*Journal); ok {
		return j
	}
	return nil
}

// OnRollback registers fn with the active transaction. Outside a transaction it is a no-op.
func OnRollback(ctx context.Context, fn func()) {
	if j := JournalFrom(ctx); j != nil {
		j.OnRollback(fn)
	}
}

// OnComplete defers fn until the active transaction ends. Outside a transaction it
// returns false and the caller runs fn itself.
func OnComplete(ctx context.Context, fn func()) bool {
	j := JournalFrom(ctx)
	if j == nil {
		return false
	}
	j.OnComplete(fn)
	return true
}
