package tx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJournal_RollbackRunsInReverse(t *testing.T) {
	j := &Journal{}
	ctx := WithJournal(context.Background(), j)

	var order []int
	OnRollback(ctx, func() { order = append(order, 1) })
	OnRollback(ctx, func() { order = append(order, 2) })

	assert.Equal(t, 2, j.Rollback())
	assert.Equal(t, []int{2, 1}, order)
	assert.Equal(t, 0, j.Rollback())
}

func TestJournal_CommitDiscards(t *testing.T) {
	j := &Journal{}
	called := false
	j.OnRollback(func() { called = true })
	j.Commit()

	assert.Equal(t, 0, j.Rollback())
	assert.False(t, called)
}

func TestOnRollback_OutsideTransaction(t *testing.T) {
	assert.Nil(t, JournalFrom(context.Background()))
	assert.NotPanics(t, func() { OnRollback(context.Background(), func() {}) })
}

func TestJournal_CompletionHooksRunOnBothOutcomes(t *testing.T) {
	var events []string

	committed := &Journal{}
	committed.OnRollback(func() { events = append(events, "undo") })
	committed.OnComplete(func() { events = append(events, "commit-done") })
	committed.Commit()
	assert.Equal(t, []string{"commit-done"}, events)

	events = nil
	rolled := &Journal{}
	ctx := WithJournal(context.Background(), rolled)
	OnRollback(ctx, func() { events = append(events, "undo") })
	assert.True(t, OnComplete(ctx, func() { events = append(events, "rollback-done") }))
	assert.Equal(t, 1, rolled.Rollback())
	assert.Equal(t, []string{"undo", "rollback-done"}, events)

	rolled.Commit()
	assert.Len(t, events, 2)
}

func TestOnComplete_OutsideTransaction(t *testing.T) {
	assert.False(t, OnComplete(context.Background(), func() {}))
}
