package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fabquote/config"
	"fabquote/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishQuotationEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	event := &service.QuotationEvent{
		RequestID:   "req-1",
		EventID:     "evt-1",
		Type:        service.QuotationEventStatusChanged,
		QuotationID: "0b8f5a8e-9a4f-4d8e-9b0c-6a2f3c1d2e4f",
		Status:      "Quoted",
		OccurredAt:  time.Now().UTC(),
	}

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishQuotationEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "quotation.status_changed", received.Message.Attributes["event_type"])
	assert.Equal(t, event.QuotationID, received.Message.Attributes["quotation_id"])
	assert.Equal(t, "Quoted", received.Message.Attributes["status"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.QuotationEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Quoted", decoded.Status)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishQuotationEvent(context.Background(), &service.QuotationEvent{EventID: "evt-2"})
	assert.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	assert.NoError(t, publisher.PublishQuotationEvent(context.Background(), &service.QuotationEvent{}))

	_, err = NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}},
		Logger: discardLogger(),
	})
	assert.Error(t, err)

	_, err = NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}},
		Logger: discardLogger(),
	})
	assert.Error(t, err)
}
