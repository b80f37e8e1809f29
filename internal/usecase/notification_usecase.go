package usecase

import (
	"context"

	"fabquote/internal/domain/service"
)

// NotificationUsecase turns quotation events into customer messages.
type NotificationUsecase interface {
	// HandleQuotationEvent sends the status message for an event.
	// Events the customer is not told about, and customers without a phone, are skipped.
	HandleQuotationEvent(ctx context.Context, event *service.QuotationEvent) error
}
