package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"fabquote/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to an existing topic; it does not create one.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	// Events for one quotation must reach the notifier in transition order.
	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishQuotationEvent blocks until the server acknowledges the message.
func (p *googlePubSubPublisher) PublishQuotationEvent(ctx context.Context, event *service.QuotationEvent) error {
	// Serialize the event to JSON
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: event.QuotationID,
	}

	p.logger.DebugContext(ctx, "[GooglePubSub] Publishing event",
		slog.String("event_type", string(event.Type)),
		slog.String("quotation_id", event.QuotationID),
	)

	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		// A failed ordered publish pauses the key until resumed.
		p.publisher.ResumePublish(event.QuotationID)

		return errors.Wrapf(err, "publish %s for quotation %s", event.Type, event.QuotationID)
	}

	p.logger.InfoContext(ctx, "[GooglePubSub] Event published",
		slog.String("event_id", event.EventID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
