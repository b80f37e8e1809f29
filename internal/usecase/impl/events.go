package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fabquote/internal/delivery/context"
	"fabquote/internal/domain/entity"
	"fabquote/internal/domain/service"

	"github.com/google/uuid"
)

// newQuotationEvent captures the state of a quotation after a mutation.
func newQuotationEvent(ctx context.Context, eventType service.QuotationEventType, q *entity.Quotation, previous entity.QuotationStatus) *service.QuotationEvent {
	event := &service.QuotationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		EventID:        uuid.NewString(),
		Type:           eventType,
		QuotationID:    q.ID.String(),
		OwnerID:        q.OwnerID.String(),
		OwnerName:      q.OwnerName,
		QuotationType:  string(q.Type),
		Status:         string(q.Status),
		PreviousStatus: string(previous),
		OccurredAt:     time.Now().UTC(),
	}
	if q.Total != nil {
		event.Total = q.Total.StringFixed(2)
	}
	if q.Currency != nil {
		event.Currency = string(*q.Currency)
	}
	if q.PaymentReference != nil {
		event.PaymentReference = *q.PaymentReference
	}

	return event
}

// publishEvent publishes after the mutation committed. A failed publish never fails the operation.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.QuotationEvent) {
	if publisher == nil {
		return
	}

	if err := publisher.PublishQuotationEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "failed to publish quotation event",
			slog.String("event_type", string(event.Type)),
			slog.String("quotation_id", event.QuotationID),
			slog.Any("error", err),
		)
	}
}
