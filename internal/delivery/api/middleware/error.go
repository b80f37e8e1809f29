package middleware

import (
	"log/slog"
	"net/http"

	"fabquote/internal/delivery/api/response"
	deliverycontext "fabquote/internal/delivery/context"
	domainerrors "fabquote/internal/domain/errors"
	"fabquote/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
			)
		}

		_ = response.FromAppError(c, appErr)

		return
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	// For 500 errors, do not expose internal error details to the client
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
