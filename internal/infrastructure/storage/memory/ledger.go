package memory

import (
	"context"
	"slices"
	"sync"

	"salesdesk/internal/core/tx"
	"salesdesk/internal/domain/ledger"
)

// Journal is an append-only list of ledger entries.
type Journal struct {
	mu      sync.RWMutex
	entries []ledger.Entry
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

var _ ledger.Journal = (*Journal)(nil)

// Append adds e. Inside a failed transaction the entry is withdrawn, so it never
// becomes visible as a committed record.
func (j *Journal) Append(ctx context.Context, e ledger.Entry) error {
	j.mu.Lock()
	j.entries = append(j.entries, e)
	j.mu.Unlock()

	tx.OnRollback(ctx, func() {
		j.mu.Lock()
		defer j.mu.Unlock()
		j.entries = slices.DeleteFunc(j.entries, func(x ledger.Entry) bool { return x.ID == e.ID })
	})
	return nil
}

func (j *Journal) All(_ context.Context) ([]ledger.Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return slices.Clone(j.entries), nil
}

func (j *Journal) ByDocument(_ context.Context, number string) ([]ledger.Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var out []ledger.Entry
	for _, e := range j.entries {
		if e.DocumentNumber == number {
			out = append(out, e)
		}
	}
	return out, nil
}
