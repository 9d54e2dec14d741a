package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/id"
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain/catalogs/product"
	"salesdesk/internal/domain/documents/quotation"
	"salesdesk/internal/domain/pricing"
	"salesdesk/internal/domain/registers/stock"
)

var now = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func quote(t *testing.T) *quotation.Quotation {
	t.Helper()
	q := quotation.New("QT-2026-00001", "client-9", "rep-1", now, "rep-1")
	chair := product.NewFurniture("CHR-1", "Chair", types.NewMoneyFromInt(50),
		product.FurnitureAttrs{Material: "steel", AssemblyRequired: true})
	pens := product.NewOfficeSupply("PEN-12", "Pens", types.NewMoneyFromInt(4),
		product.OfficeSupplyAttrs{PackSize: 12})

	for _, l := range []struct {
		p   *product.Product
		qty int
	}{{chair, 2}, {pens, 5}} {
		item, err := pricing.PriceLineItem(l.p, l.qty, l.p.UnitPrice, nil)
		require.NoError(t, err)
		q.AddLine(item)
	}
	require.NoError(t, q.SetAdjustments(types.NewMoneyFromInt(10), types.NewMoneyFromInt(19)))
	return q
}

func TestFromQuotation_SnapshotsLinesAndAdjustments(t *testing.T) {
	q := quote(t)
	o := FromQuotation(q, "SO-2026-00001", now.Add(time.Hour), "rep-2")

	assert.Equal(t, StateOpen, o.State)
	assert.Equal(t, q.ID, o.QuotationID)
	assert.Equal(t, "QT-2026-00001", o.QuotationNumber)
	assert.Equal(t, "SO-2026-00001", o.Number)
	assert.NotEqual(t, q.ID, o.ID)
	assert.Equal(t, "client-9", o.ClientID)
	assert.Equal(t, "120", o.Subtotal.String())
	assert.Equal(t, "129", o.Total.String())
	assert.Equal(t, 1, o.Version)

	q.Lines[0].Quantity = 100
	q.Recalculate()
	assert.Equal(t, 2, o.Lines[0].Quantity, "order lines must not alias quotation lines")
	assert.Equal(t, "120", o.Subtotal.String())
}

func TestOrder_FulfillAndInvoicePreconditions(t *testing.T) {
	o := FromQuotation(quote(t), "SO-2026-00001", now, "rep-1")

	assert.ErrorIs(t, o.CanInvoice(), apperror.ErrNotFulfilled)
	require.NoError(t, o.CanFulfill())

	assert.Equal(t, []stock.Line{{ProductCode: "CHR-1", Quantity: 2}, {ProductCode: "PEN-12", Quantity: 5}}, o.StockLines())

	o.MarkFulfilled(now, "rep-1")
	assert.ErrorIs(t, o.CanFulfill(), apperror.ErrAlreadyFulfilled)
	require.NoError(t, o.CanInvoice())

	invoiceID := id.New()
	o.MarkInvoiced(invoiceID, now, "rep-1")
	assert.ErrorIs(t, o.CanInvoice(), apperror.ErrAlreadyInvoiced)
	assert.ErrorIs(t, o.CanFulfill(), apperror.ErrAlreadyInvoiced)
}

func TestOrder_EmptyCannotBeFulfilled(t *testing.T) {
	q := quotation.New("QT-2026-00003", "c", "r", now, "r")
	o := FromQuotation(q, "SO-2026-00003", now, "r")
	assert.ErrorIs(t, o.CanFulfill(), apperror.ErrEmptyDocument)
}
