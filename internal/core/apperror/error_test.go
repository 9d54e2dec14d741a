package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_IsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("convert: %w", NewAlreadyConverted("QT-2026-00001", "abc"))

	assert.True(t, errors.Is(err, ErrAlreadyConverted))
	assert.False(t, errors.Is(err, ErrAlreadyInvoiced))
	assert.True(t, HasCode(err, CodeAlreadyConverted))
	assert.Equal(t, KindState, KindOf(err))
	assert.Equal(t, http.StatusConflict, GetHTTPStatus(err))
}

func TestAppError_FactoriesDoNotShareDetails(t *testing.T) {
	first := NewInsufficientStock("SKU-1", 5, 3)
	second := NewInsufficientStock("SKU-2", 1, 0)

	assert.Equal(t, "SKU-1", first.Details["product_code"])
	assert.Equal(t, "SKU-2", second.Details["product_code"])
	assert.Equal(t, KindResource, first.Kind)
	assert.Empty(t, ErrInsufficientStock.Details)
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("boom")))
}

func TestAsAppError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewInternal(cause)

	got, ok := AsAppError(fmt.Errorf("wrap: %w", err))
	require.True(t, ok)
	assert.Equal(t, CodeInternal, got.Code)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		validation bool
		state      bool
		resource   bool
		status     int
	}{
		{"invalid quantity", NewInvalidQuantity(0), true, false, false, http.StatusBadRequest},
		{"already converted", NewAlreadyConverted("QT-2026-00001", "x"), false, true, false, http.StatusConflict},
		{"insufficient stock", NewInsufficientStock("CHAIR", 5, 3), false, false, true, http.StatusUnprocessableEntity},
		{"not found", NewNotFound("product", "CHAIR"), false, false, false, http.StatusNotFound},
		{"wrapped state", fmt.Errorf("fulfill: %w", NewNotFulfilled("SO-2026-00001")), false, true, false, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.validation, IsValidation(tt.err))
			assert.Equal(t, tt.state, IsState(tt.err))
			assert.Equal(t, tt.resource, IsResource(tt.err))
			assert.Equal(t, tt.status, GetHTTPStatus(tt.err))
		})
	}
}
