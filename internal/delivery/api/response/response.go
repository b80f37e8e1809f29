package response

import (
	"net/http"

	deliverycontext "fabquote/internal/delivery/context"
	domainerrors "fabquote/internal/domain/errors"
	"fabquote/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == 401 || statusCode == 403 {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// FromAppError renders an application error.
// Recovery payloads are always written, even on 5xx, so a confirmed payment can be reconciled.
func FromAppError(c echo.Context, appErr domainerrors.AppError) error {
	if recoverable, ok := appErr.(domainerrors.RecoverableError); ok {
		return c.JSON(appErr.HTTPCode(), ErrorResponse{
			Error: &ErrorInfo{
				Code:    appErr.ErrorCode(),
				Message: appErr.Message(),
				Details: recoverable.RecoveryDetails(),
			},
			Meta: &MetaInfo{
				RequestID: deliverycontext.GetRequestID(c),
			},
		})
	}

	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return FromAppError(c, appErr)
	}

	return errors.WithStack(err)
}
