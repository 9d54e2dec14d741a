package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain/catalogs/product"
	"salesdesk/internal/domain/documents/quotation"
	"salesdesk/internal/domain/ledger"
	"salesdesk/internal/domain/registers/stock"
)

var now = time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)

func TestTxManager_RollbackUndoesEveryStore(t *testing.T) {
	ctx := context.Background()
	inv := NewInventoryRepo()
	quotes := NewQuotationRepo()
	journal := NewJournal()
	require.NoError(t, inv.Put(ctx, stock.Record{ProductCode: "A", OnHand: 5, Active: true}))

	q := quotation.New("QT-2026-00001", "c", "r", now, "r")
	require.NoError(t, quotes.Create(ctx, q))

	boom := errors.New("boom")
	err := NewTxManager().RunInTransaction(ctx, func(ctx context.Context) error {
		require.NoError(t, inv.Adjust(ctx, map[string]int{"A": -3}, now))

		changed := q.Clone()
		changed.State = quotation.StateConverted
		require.NoError(t, quotes.Update(ctx, changed))

		require.NoError(t, quotes.Create(ctx, quotation.New("QT-2026-00002", "c", "r", now, "r")))
		require.NoError(t, journal.Append(ctx, ledger.Entry{DocumentNumber: "QT-2026-00001"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	rec, err := inv.Get(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 5, rec.OnHand)

	got, err := quotes.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, quotation.StateDraft, got.State)

	_, err = quotes.GetByNumber(ctx, "QT-2026-00002")
	assert.True(t, apperror.IsNotFound(err))

	all, _ := quotes.List(ctx)
	assert.Len(t, all, 1)

	entries, _ := journal.All(ctx)
	assert.Empty(t, entries)
}

func TestTxManager_CommitKeepsChangesAndNests(t *testing.T) {
	ctx := context.Background()
	inv := NewInventoryRepo()
	require.NoError(t, inv.Put(ctx, stock.Record{ProductCode: "A", OnHand: 5, Active: true}))

	m := NewTxManager()
	err := m.RunInTransaction(ctx, func(ctx context.Context) error {
		return m.RunInTransaction(ctx, func(ctx context.Context) error {
			return inv.Adjust(ctx, map[string]int{"A": -2}, now)
		})
	})
	require.NoError(t, err)

	rec, _ := inv.Get(ctx, "A")
	assert.Equal(t, 3, rec.OnHand)
}

func TestInventoryRepo_AdjustUnknownFailsWholeBatch(t *testing.T) {
	ctx := context.Background()
	inv := NewInventoryRepo()
	require.NoError(t, inv.Put(ctx, stock.Record{ProductCode: "A", OnHand: 5, Active: true}))

	err := inv.Adjust(ctx, map[string]int{"A": -1, "B": -1}, now)
	assert.True(t, apperror.IsNotFound(err))

	rec, _ := inv.Get(ctx, "A")
	assert.Equal(t, 5, rec.OnHand)
}

func TestDocStore_ReturnsClones(t *testing.T) {
	ctx := context.Background()
	quotes := NewQuotationRepo()
	q := quotation.New("QT-2026-00001", "c", "r", now, "r")
	require.NoError(t, quotes.Create(ctx, q))

	q.ClientID = "mutated after create"
	got, err := quotes.GetByNumber(ctx, "QT-2026-00001")
	require.NoError(t, err)
	assert.Equal(t, "c", got.ClientID)

	got.ClientID = "mutated after read"
	again, _ := quotes.GetByID(ctx, q.ID)
	assert.Equal(t, "c", again.ClientID)

	assert.Equal(t, apperror.CodeDuplicate, mustCode(t, quotes.Create(ctx, q)))
}

func TestProductRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepo()
	p := product.NewOfficeSupply("PAPER-A4", "Paper", types.MustMoney("5.50"), product.OfficeSupplyAttrs{PackSize: 500})
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Create(ctx, product.NewOfficeSupply("CLIP", "Clips", types.MustMoney("1"), product.OfficeSupplyAttrs{PackSize: 100})))

	p.OfficeSupply.PackSize = 1
	got, err := repo.GetByCode(ctx, "PAPER-A4")
	require.NoError(t, err)
	assert.Equal(t, 500, got.OfficeSupply.PackSize)

	list, _ := repo.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "CLIP", list[0].Code)

	assert.True(t, apperror.IsNotFound(repo.Update(ctx, product.NewOfficeSupply("NOPE", "x", types.Zero(), product.OfficeSupplyAttrs{PackSize: 1}))))
}

func mustCode(t *testing.T, err error) string {
	t.Helper()
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	return appErr.Code
}
