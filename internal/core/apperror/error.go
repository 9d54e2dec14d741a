// Package apperror provides structured error handling for the sales core.
// Every expected failure of a pricing or lifecycle operation is an *AppError
// carrying a machine-readable code and a Kind from the error taxonomy.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error into the taxonomy callers branch on.
type Kind string

const (
	// KindValidation is bad caller input. Always caller-correctable, never retried.
	KindValidation Kind = "validation"
	// KindState is an operation attempted in a state that forbids it.
	KindState Kind = "state"
	// KindResource is a shortage of an external resource (stock).
	KindResource Kind = "resource"
	// KindNotFound is a missing entity.
	KindNotFound Kind = "not_found"
	// KindInternal is an infrastructure failure outside the core's expected outcomes.
	KindInternal Kind = "internal"
)

// Error codes
const (
	CodeInternal = "INTERNAL_ERROR"

	// Validation errors (400)
	CodeValidation      = "VALIDATION_ERROR"
	CodeInvalidQuantity = "INVALID_QUANTITY"
	CodeInvalidPrice    = "INVALID_PRICE"
	CodeInvalidAmount   = "INVALID_AMOUNT"
	CodeEmptyDocument   = "EMPTY_DOCUMENT"

	// State errors (409)
	CodeAlreadyConverted       = "ALREADY_CONVERTED"
	CodeAlreadyInvoiced        = "ALREADY_INVOICED"
	CodeAlreadyFulfilled       = "ALREADY_FULFILLED"
	CodeNotFulfilled           = "NOT_FULFILLED"
	CodeInvoiceVoid            = "INVOICE_VOID"
	CodeCannotVoidPaidInvoice  = "CANNOT_VOID_PAID_INVOICE"
	CodeDocumentLocked         = "DOCUMENT_LOCKED"
	CodePaymentAlreadyApproved = "PAYMENT_ALREADY_APPROVED"

	// Resource errors (422)
	CodeInsufficientStock = "INSUFFICIENT_STOCK"

	// Not found (404)
	CodeNotFound = "NOT_FOUND"

	// Conflict (409)
	CodeDuplicate = "DUPLICATE_ENTRY"
)

// AppError is the standard error type for the platform.
// It implements error interface and provides structured details for API responses.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Kind places the error in the taxonomy
	Kind Kind `json:"kind"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (field errors, quantities, etc.)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another *AppError by code, so errors.Is(err, apperror.ErrNotFulfilled) works.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

func newError(kind Kind, code, message string, status int) *AppError {
	return &AppError{
		Code:       code,
		Kind:       kind,
		Message:    message,
		HTTPStatus: status,
	}
}

// Sentinels for errors.Is comparisons. Never return these directly; use the factories,
// which hand out a fresh value each time so WithDetail cannot leak between calls.
var (
	ErrInvalidQuantity       = &AppError{Code: CodeInvalidQuantity}
	ErrInvalidPrice          = &AppError{Code: CodeInvalidPrice}
	ErrInvalidAmount         = &AppError{Code: CodeInvalidAmount}
	ErrEmptyDocument         = &AppError{Code: CodeEmptyDocument}
	ErrAlreadyConverted      = &AppError{Code: CodeAlreadyConverted}
	ErrAlreadyInvoiced       = &AppError{Code: CodeAlreadyInvoiced}
	ErrAlreadyFulfilled      = &AppError{Code: CodeAlreadyFulfilled}
	ErrNotFulfilled          = &AppError{Code: CodeNotFulfilled}
	ErrInvoiceVoid           = &AppError{Code: CodeInvoiceVoid}
	ErrCannotVoidPaidInvoice = &AppError{Code: CodeCannotVoidPaidInvoice}
	ErrDocumentLocked        = &AppError{Code: CodeDocumentLocked}
	ErrPaymentApproved       = &AppError{Code: CodePaymentAlreadyApproved}
	ErrInsufficientStock     = &AppError{Code: CodeInsufficientStock}
	ErrNotFound              = &AppError{Code: CodeNotFound}
)

// --- Validation factories ---

// NewValidation creates a generic validation error (400)
func NewValidation(message string) *AppError {
	return newError(KindValidation, CodeValidation, message, http.StatusBadRequest)
}

// NewInvalidQuantity reports a non-positive line quantity.
func NewInvalidQuantity(quantity int) *AppError {
	return newError(KindValidation, CodeInvalidQuantity, "quantity must be positive", http.StatusBadRequest).
		WithDetail("quantity", quantity)
}

// NewInvalidPrice reports a negative unit price.
func NewInvalidPrice(price string) *AppError {
	return newError(KindValidation, CodeInvalidPrice, "unit price cannot be negative", http.StatusBadRequest).
		WithDetail("unit_price", price)
}

// NewInvalidAmount reports a non-positive payment amount.
func NewInvalidAmount(amount string) *AppError {
	return newError(KindValidation, CodeInvalidAmount, "amount must be positive", http.StatusBadRequest).
		WithDetail("amount", amount)
}

// NewEmptyDocument reports a document without line items.
func NewEmptyDocument(number string) *AppError {
	return newError(KindValidation, CodeEmptyDocument, "document has no line items", http.StatusBadRequest).
		WithDetail("document_number", number)
}

// --- State factories ---

// NewState creates a state error (409) for a named code.
func NewState(code, message string) *AppError {
	return newError(KindState, code, message, http.StatusConflict)
}

// NewAlreadyConverted reports a second conversion of a quotation.
func NewAlreadyConverted(number, orderID string) *AppError {
	return NewState(CodeAlreadyConverted, "quotation already converted to order").
		WithDetail("quotation_number", number).
		WithDetail("order_id", orderID)
}

// NewAlreadyInvoiced reports an operation on an order that was already invoiced.
func NewAlreadyInvoiced(number, invoiceID string) *AppError {
	return NewState(CodeAlreadyInvoiced, "order already invoiced").
		WithDetail("order_number", number).
		WithDetail("invoice_id", invoiceID)
}

// NewAlreadyFulfilled reports a second fulfillment of an order.
func NewAlreadyFulfilled(number string) *AppError {
	return NewState(CodeAlreadyFulfilled, "order already fulfilled").
		WithDetail("order_number", number)
}

// NewNotFulfilled reports an invoice attempt on an order whose stock was never decremented.
func NewNotFulfilled(number string) *AppError {
	return NewState(CodeNotFulfilled, "order must be fulfilled before invoicing").
		WithDetail("order_number", number)
}

// NewInvoiceVoid reports a payment against a void invoice.
func NewInvoiceVoid(invoiceID string) *AppError {
	return NewState(CodeInvoiceVoid, "invoice is void").
		WithDetail("invoice_id", invoiceID)
}

// NewCannotVoidPaidInvoice reports a void attempt outside the ISSUED state.
func NewCannotVoidPaidInvoice(invoiceID, state string) *AppError {
	return NewState(CodeCannotVoidPaidInvoice, "only issued invoices can be voided").
		WithDetail("invoice_id", invoiceID).
		WithDetail("state", state)
}

// NewDocumentLocked reports an edit of a document that left its editable state.
func NewDocumentLocked(number, state string) *AppError {
	return NewState(CodeDocumentLocked, "document is locked for editing").
		WithDetail("document_number", number).
		WithDetail("state", state)
}

// NewPaymentAlreadyApproved reports a second approval of a payment.
func NewPaymentAlreadyApproved(paymentID string) *AppError {
	return NewState(CodePaymentAlreadyApproved, "payment already approved").
		WithDetail("payment_id", paymentID)
}

// --- Resource factories ---

// NewInsufficientStock creates a stock shortage error naming the offending product.
func NewInsufficientStock(productCode string, requested, available int) *AppError {
	return &AppError{
		Code:       CodeInsufficientStock,
		Kind:       KindResource,
		Message:    fmt.Sprintf("Insufficient stock for %s", productCode),
		HTTPStatus: http.StatusUnprocessableEntity,
		Details: map[string]any{
			"product_code": productCode,
			"requested":    requested,
			"available":    available,
		},
	}
}

// --- Misc factories ---

// NewNotFound creates a not found error (404)
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Kind:       KindNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewDuplicate creates a duplicate entry error (409)
func NewDuplicate(entity, field, value string) *AppError {
	return &AppError{
		Code:       CodeDuplicate,
		Kind:       KindValidation,
		Message:    fmt.Sprintf("%s with this %s already exists", entity, field),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"entity": entity, "field": field, "value": value},
	}
}

// NewInternal creates an internal server error (hides details from client)
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Kind:       KindInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// --- Helper functions ---

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode checks whether err carries the given code.
func HasCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// KindOf returns the taxonomy kind of err, KindInternal for foreign errors.
func KindOf(err error) Kind {
	if appErr, ok := AsAppError(err); ok && appErr.Kind != "" {
		return appErr.Kind
	}
	return KindInternal
}

// GetHTTPStatus returns appropriate HTTP status for any error
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok && appErr.HTTPStatus != 0 {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// IsNotFound checks if error is CodeNotFound
func IsNotFound(err error) bool {
	return HasCode(err, CodeNotFound)
}

// IsValidation reports whether err is caller-correctable bad input.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// IsState reports whether err is a forbidden state transition.
func IsState(err error) bool {
	return KindOf(err) == KindState
}

// IsResource reports whether err is a resource shortage.
func IsResource(err error) bool {
	return KindOf(err) == KindResource
}
