package middleware

import (
	"log/slog"

	deliverycontext "fabquote/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags every request with an id and hangs a logger
// carrying that id on the request context.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process echoes the id back in the response so clients can quote it in
// support requests.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		requestID := deliverycontext.NormalizeRequestID(req.Header.Get(deliverycontext.HeaderXRequestID))

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx, _ := deliverycontext.WithScope(req.Context(), m.logger, requestID)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
