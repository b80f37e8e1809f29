package service

import (
	"context"
	"time"
)

// QuotationEventType names a lifecycle event.
type QuotationEventType string

const (
	QuotationEventSubmitted     QuotationEventType = "quotation.submitted"
	QuotationEventStatusChanged QuotationEventType = "quotation.status_changed"
	QuotationEventPaid          QuotationEventType = "quotation.paid"
	QuotationEventCancelled     QuotationEventType = "quotation.cancelled"
)

// QuotationEvent represents a quotation lifecycle event to be processed by the notifier worker
type QuotationEvent struct {
	RequestID        string             `json:"request_id,omitempty"` // For distributed tracing
	EventID          string             `json:"event_id"`
	Type             QuotationEventType `json:"type"`
	QuotationID      string             `json:"quotation_id"`
	OwnerID          string             `json:"owner_id"`
	OwnerName        string             `json:"owner_name,omitempty"`
	QuotationType    string             `json:"quotation_type"`
	Status           string             `json:"status"`
	PreviousStatus   string             `json:"previous_status,omitempty"`
	Total            string             `json:"total,omitempty"`
	Currency         string             `json:"currency,omitempty"`
	PaymentReference string             `json:"payment_reference,omitempty"`
	OccurredAt       time.Time          `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishQuotationEvent publishes a quotation event for async processing
	PublishQuotationEvent(ctx context.Context, event *QuotationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
