package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fabquote/internal/delivery/api/response"
	domainerrors "fabquote/internal/domain/errors"
	"fabquote/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderError(t *testing.T, err error) (int, response.ErrorResponse) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "validation keeps details",
			err:         errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("total must be positive"), "update quote"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "total must be positive",
		},
		{
			name:        "invalid state",
			err:         domainerrors.ErrInvalidState.WithDetails("cannot cancel a quotation in status Paid"),
			wantStatus:  http.StatusConflict,
			wantCode:    "INVALID_STATE",
			wantDetails: "cannot cancel a quotation in status Paid",
		},
		{
			name:       "dependency hides details",
			err:        domainerrors.NewDependencyError(errors.New("connection refused"), "update quotation"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "DEPENDENCY_FAILED",
		},
		{
			name:       "settlement keeps the payment reference",
			err:        domainerrors.NewSettlementError(errors.New("timeout"), "q-1", "pay_123"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "SETTLEMENT_PERSIST_FAILED",
			wantDetails: map[string]any{
				"quotation_id":      "q-1",
				"payment_reference": "pay_123",
			},
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := renderError(t, tt.err)

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotEmpty(t, body.Meta.RequestID)
		})
	}
}
