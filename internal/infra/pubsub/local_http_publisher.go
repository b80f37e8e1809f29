package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"fabquote/internal/domain/service"

	"github.com/pkg/errors"
)

// localHTTPPublisher posts events straight to a notifier's /push endpoint in
// the Pub/Sub push envelope, so development needs no emulator.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage is the envelope Pub/Sub uses for push subscriptions.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

const localPushTimeout = 10 * time.Second

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: localPushTimeout,
		},
		logger: logger,
	}
}

// PublishQuotationEvent publishes an event by sending HTTP POST to the local endpoint
func (p *localHTTPPublisher) PublishQuotationEvent(ctx context.Context, event *service.QuotationEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/quotation-events-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = event.EventID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.DebugContext(ctx, "[LocalPubSub] Publishing event",
		slog.String("endpoint", p.endpoint),
		slog.String("event_type", string(event.Type)),
		slog.String("quotation_id", event.QuotationID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("notifier rejected %s for quotation %s: status %d", event.Type, event.QuotationID, resp.StatusCode)
	}

	p.logger.InfoContext(ctx, "[LocalPubSub] Event published successfully",
		slog.String("event_id", event.EventID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
