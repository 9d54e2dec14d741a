package entity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/id"
)

func TestBaseDocument_TouchAt(t *testing.T) {
	created := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	doc := NewBaseDocument("QT-2026-00001", created, "u-1")

	require.False(t, id.IsNil(doc.GetID()))
	assert.Equal(t, 1, doc.GetVersion())
	assert.Equal(t, "u-1", doc.CreatedBy)

	later := created.Add(time.Hour)
	doc.TouchAt(later, "u-2")
	assert.Equal(t, 2, doc.Version)
	assert.Equal(t, later, doc.UpdatedAt)
	assert.Equal(t, "u-2", doc.UpdatedBy)
	assert.Equal(t, created, doc.CreatedAt)
}

func TestCatalog_Validate(t *testing.T) {
	c := NewCatalog("  SKU-1 ", "Stapler")
	assert.Equal(t, "SKU-1", c.Code)
	assert.NoError(t, c.Validate(context.Background()))

	missing := NewCatalog("", "Stapler")
	err := missing.Validate(context.Background())
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}

func TestDocument_Validate(t *testing.T) {
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	doc := NewDocument("QT-2026-00001", "client-1", "rep-1", now, "rep-1")
	assert.NoError(t, doc.Validate(context.Background()))
	assert.Equal(t, "QT-2026-00001", doc.Number)

	doc.ClientID = ""
	err := doc.Validate(context.Background())
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "clientId", appErr.Details["field"])

	doc = NewDocument("QT-2026-00002", "client-1", "", now, "")
	assert.Error(t, doc.Validate(context.Background()))
}
