package context

import (
	"context"
	"unicode"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey namespaces values the delivery layer stores on a context.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"

	// HeaderXRequestID carries the request id in and out of HTTP calls.
	HeaderXRequestID = "X-Request-Id"

	maxRequestIDLength = 128
)

// NewRequestID mints a request id.
func NewRequestID() string {
	return uuid.NewString()
}

// NormalizeRequestID keeps a client supplied id only when it is short and
// printable ASCII, otherwise it mints a fresh one.
func NormalizeRequestID(candidate string) string {
	if candidate == "" || len(candidate) > maxRequestIDLength {
		return NewRequestID()
	}
	for _, r := range candidate {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return NewRequestID()
		}
	}

	return candidate
}

// GetRequestID returns the id stored on the echo context, minting one when
// the request id middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return NewRequestID()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when no id was attached.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}
