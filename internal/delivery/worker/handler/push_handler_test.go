package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fabquote/config"
	"fabquote/internal/domain/constants"
	"fabquote/internal/domain/service"
	mockUC "fabquote/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUC.MockNotificationUsecase) {
	notificationUC := mockUC.NewMockNotificationUsecase(t)

	return NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: notificationUC,
	}), notificationUC
}

func pushBody(t *testing.T, event *service.QuotationEvent, attributes map[string]string) string {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = event.EventID
	msg.Subscription = "projects/local/subscriptions/quotation-events-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func statusChangedEvent() *service.QuotationEvent {
	return &service.QuotationEvent{
		EventID:     uuid.NewString(),
		Type:        service.QuotationEventStatusChanged,
		QuotationID: uuid.NewString(),
		OwnerID:     uuid.NewString(),
		Status:      "Shipped",
	}
}

func TestPushHandler_HandlePush_Delivers(t *testing.T) {
	h, notificationUC := newPushHandler(t, &config.Config{})
	event := statusChangedEvent()

	notificationUC.EXPECT().
		HandleQuotationEvent(mock.Anything, mock.MatchedBy(func(got *service.QuotationEvent) bool {
			return got.EventID == event.EventID && got.Status == "Shipped"
		})).
		Return(nil)

	rec := doPush(h, pushBody(t, event, map[string]string{"request_id": "req-1"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RetriesDeliveryFailures(t *testing.T) {
	h, notificationUC := newPushHandler(t, &config.Config{})

	notificationUC.EXPECT().HandleQuotationEvent(mock.Anything, mock.Anything).Return(errors.New("twilio unavailable"))

	rec := doPush(h, pushBody(t, statusChangedEvent(), nil), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_DropsMalformedMessages(t *testing.T) {
	h, _ := newPushHandler(t, &config.Config{})

	t.Run("not json", func(t *testing.T) {
		rec := doPush(h, `{"message":{"data":"!!!"}}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing owner", func(t *testing.T) {
		event := statusChangedEvent()
		event.OwnerID = ""

		rec := doPush(h, pushBody(t, event, nil), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPushHandler_HandlePush_VerifiesGoogleTokens(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://notifier.example.com/push",
	}}
	cfg.Env.Env = constants.EnvProduction

	h, notificationUC := newPushHandler(t, cfg)
	var seenAudience string
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		seenAudience = audience
		if token != "good" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
	}

	rec := doPush(h, pushBody(t, statusChangedEvent(), nil), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doPush(h, pushBody(t, statusChangedEvent(), nil), http.Header{"Authorization": {"Bearer bad"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "https://notifier.example.com/push", seenAudience)

	notificationUC.EXPECT().HandleQuotationEvent(mock.Anything, mock.Anything).Return(nil)
	rec = doPush(h, pushBody(t, statusChangedEvent(), nil), http.Header{"Authorization": {"Bearer good"}})
	assert.Equal(t, http.StatusOK, rec.Code)
}
