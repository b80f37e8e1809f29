package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fabquote/config"
	deliverycontext "fabquote/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func testServerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.AllowedOrigins = []string{"https://shop.example.com"}

	return cfg
}

func TestNewEcho_CORS(t *testing.T) {
	e := newEcho(testServerConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderOrigin, "https://shop.example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "https://shop.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlExposeHeaders), deliverycontext.HeaderXRequestID)

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.example.com")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestNewEcho_BodyLimitUsesErrorEnvelope(t *testing.T) {
	e := newEcho(testServerConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.POST("/api/v1/contact", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(strings.Repeat("x", 4096)))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestAllowedOrigins_DefaultsToAny(t *testing.T) {
	assert.Equal(t, []string{"*"}, allowedOrigins(&config.Config{}))
}
