package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/clock"
	appctx "salesdesk/internal/core/context"
	"salesdesk/internal/core/types"
)

type sliceJournal struct {
	entries []Entry
	fail    error
}

func (j *sliceJournal) Append(_ context.Context, e Entry) error {
	if j.fail != nil {
		return j.fail
	}
	j.entries = append(j.entries, e)
	return nil
}

func (j *sliceJournal) All(context.Context) ([]Entry, error) {
	return append([]Entry(nil), j.entries...), nil
}

func (j *sliceJournal) ByDocument(_ context.Context, number string) ([]Entry, error) {
	var out []Entry
	for _, e := range j.entries {
		if e.DocumentNumber == number {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestRecorder_RecordStampsActorAndTime(t *testing.T) {
	at := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	j := &sliceJournal{}
	r := NewRecorder(j, clock.NewFixed(at))

	ctx := appctx.WithUser(context.Background(), &appctx.UserContext{UserID: "acct-1"})
	e, err := r.Record(ctx, Request{
		DocumentType:   DocInvoice,
		DocumentNumber: "INV-2026-00001",
		Description:    "invoice issued",
		Amount:         types.NewMoneyFromInt(100),
		Direction:      Debit,
		RelatedEntity:  "client:c-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "acct-1", e.Actor)
	assert.Equal(t, at, e.RecordedAt)
	assert.Len(t, j.entries, 1)

	e, err = r.Record(context.Background(), Request{
		DocumentType:   DocPayment,
		DocumentNumber: "INV-2026-00001",
		Amount:         types.NewMoneyFromInt(30),
		Direction:      Credit,
	})
	require.NoError(t, err)
	assert.Equal(t, appctx.SystemActor, e.Actor)

	balance, err := r.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "70", balance.String())

	forDoc, err := r.EntriesFor(context.Background(), "INV-2026-00001")
	require.NoError(t, err)
	assert.Len(t, forDoc, 2)
}

func TestRecorder_RejectsBadRequests(t *testing.T) {
	j := &sliceJournal{}
	r := NewRecorder(j, clock.System{})

	_, err := r.Record(context.Background(), Request{DocumentNumber: "X", Amount: types.Zero(), Direction: "SIDEWAYS"})
	assert.True(t, apperror.IsValidation(err))

	_, err = r.Record(context.Background(), Request{DocumentNumber: "X", Amount: types.NewMoneyFromInt(-1), Direction: Debit})
	assert.ErrorIs(t, err, apperror.ErrInvalidAmount)

	_, err = r.Record(context.Background(), Request{Amount: types.Zero(), Direction: Debit})
	assert.True(t, apperror.IsValidation(err))

	assert.Empty(t, j.entries)
}

func TestRecorder_JournalFailure(t *testing.T) {
	j := &sliceJournal{fail: errors.New("journal closed")}
	r := NewRecorder(j, clock.System{})

	_, err := r.Record(context.Background(), Request{DocumentNumber: "SO-1", Amount: types.Zero(), Direction: Credit})
	assert.ErrorContains(t, err, "journal closed")
}
