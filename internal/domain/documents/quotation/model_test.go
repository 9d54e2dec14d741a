package quotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/id"
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain/catalogs/product"
	"salesdesk/internal/domain/pricing"
)

var now = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func TestQuotation_ConvertPreconditions(t *testing.T) {
	q := New("QT-2026-00001", "client-1", "rep-1", now, "rep-1")
	assert.Equal(t, StateDraft, q.State)
	assert.ErrorIs(t, q.CanConvert(), apperror.ErrEmptyDocument)

	p := product.NewTechnology("MON-27", "Monitor", types.NewMoneyFromInt(300),
		product.TechnologyAttrs{Brand: "Acme", Model: "M27", WarrantyMonths: 24})
	item, err := pricing.PriceLineItem(p, 1, p.UnitPrice, nil)
	require.NoError(t, err)
	q.AddLine(item)
	require.NoError(t, q.CanConvert())
	require.NoError(t, q.CanModify())

	orderID := id.New()
	q.MarkConverted(orderID, now.Add(time.Minute), "rep-2")

	assert.Equal(t, StateConverted, q.State)
	assert.Equal(t, orderID, *q.OrderID)
	assert.Equal(t, "rep-2", q.UpdatedBy)

	err = q.CanConvert()
	assert.ErrorIs(t, err, apperror.ErrAlreadyConverted)
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, orderID.String(), appErr.Details["order_id"])

	assert.ErrorIs(t, q.CanModify(), apperror.ErrDocumentLocked)
}

func TestQuotation_CloneIsIndependent(t *testing.T) {
	q := New("QT-2026-00002", "client-1", "rep-1", now, "rep-1")
	orderID := id.New()
	q.MarkConverted(orderID, now, "rep-1")

	c := q.Clone()
	*c.OrderID = id.New()
	c.State = StateDraft

	assert.Equal(t, orderID, *q.OrderID)
	assert.Equal(t, StateConverted, q.State)
}

func TestQuotation_ConvertRejectsNegativeTotal(t *testing.T) {
	q := New("QT-2026-00002", "client-1", "rep-1", now, "rep-1")
	p := product.NewTechnology("KB-WL", "Keyboard", types.NewMoneyFromInt(40),
		product.TechnologyAttrs{Brand: "Acme", Model: "K1", WarrantyMonths: 12})
	item, err := pricing.PriceLineItem(p, 1, p.UnitPrice, nil)
	require.NoError(t, err)
	q.AddLine(item)

	require.NoError(t, q.SetAdjustments(types.NewMoneyFromInt(45), types.NewMoneyFromInt(4)))
	assert.Equal(t, "-1", q.Total.String())
	assert.True(t, apperror.IsValidation(q.CanConvert()))

	require.NoError(t, q.SetAdjustments(types.NewMoneyFromInt(45), types.NewMoneyFromInt(5)))
	assert.NoError(t, q.CanConvert())
}
