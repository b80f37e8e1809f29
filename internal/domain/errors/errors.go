package errors

import (
	"net/http"

	"fabquote/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// RecoverableError is an AppError whose payload must reach the caller even on 5xx responses.
type RecoverableError interface {
	AppError
	RecoveryDetails() map[string]string
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors carrying the same business code, so detailed copies still match the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Input errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Identity errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Not permitted",
		"",
	)

	// Quotation errors
	ErrQuotationNotFound = NewBaseError(
		http.StatusNotFound,
		"QUOTATION_NOT_FOUND",
		"Quotation not found",
		"",
	)

	ErrInvalidState = NewBaseError(
		http.StatusConflict,
		"INVALID_STATE",
		"Transition not permitted from the current status",
		"",
	)

	ErrPaymentConflict = NewBaseError(
		http.StatusConflict,
		"PAYMENT_CONFLICT",
		"Quotation is already settled with a different payment reference",
		"",
	)

	ErrPaymentNotVerified = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Payment could not be verified",
		"",
	)

	// Object errors
	ErrFileNotFound = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Uploaded file not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DependencyError represents a failed call to the storage gateway or the object store.
type DependencyError struct {
	err     error
	details string
}

// NewDependencyError creates a dependency failure error
func NewDependencyError(err error, details string) AppError {
	return &DependencyError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DependencyError) Error() string {
	return errors.Wrap(e.err, "dependency call failed: "+e.details).Error()
}

// Unwrap returns the underlying failure
func (e *DependencyError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DependencyError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *DependencyError) ErrorCode() string {
	return "DEPENDENCY_FAILED"
}

// Message returns the user-friendly error message
func (e *DependencyError) Message() string {
	return "A dependent service failed, please retry"
}

// Details returns detailed error information
func (e *DependencyError) Details() string {
	return e.details
}

// SettlementError is a dependency failure while recording a confirmed payment.
// It keeps the payment reference so the payment can be reconciled manually.
type SettlementError struct {
	err              error
	quotationID      string
	paymentReference string
}

// NewSettlementError creates a settlement persistence error
func NewSettlementError(err error, quotationID, paymentReference string) *SettlementError {
	return &SettlementError{
		err:              err,
		quotationID:      quotationID,
		paymentReference: paymentReference,
	}
}

// Error implements the error interface
func (e *SettlementError) Error() string {
	return errors.Wrapf(e.err, "failed to record payment %s for quotation %s", e.paymentReference, e.quotationID).Error()
}

// Unwrap returns the underlying failure
func (e *SettlementError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *SettlementError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *SettlementError) ErrorCode() string {
	return "SETTLEMENT_PERSIST_FAILED"
}

// Message returns the user-friendly error message
func (e *SettlementError) Message() string {
	return "Payment received but could not be recorded, keep the payment reference for support"
}

// Details returns detailed error information
func (e *SettlementError) Details() string {
	return "payment_reference=" + e.paymentReference
}

// PaymentReference returns the gateway identifier of the payment that was not recorded.
func (e *SettlementError) PaymentReference() string {
	return e.paymentReference
}

// QuotationID returns the quotation the payment belongs to.
func (e *SettlementError) QuotationID() string {
	return e.quotationID
}

// RecoveryDetails returns the payload needed for manual reconciliation.
func (e *SettlementError) RecoveryDetails() map[string]string {
	return map[string]string{
		"quotation_id":      e.quotationID,
		"payment_reference": e.paymentReference,
	}
}
