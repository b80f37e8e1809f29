package impl

import (
	"context"
	"fmt"
	"log/slog"

	"fabquote/config"
	deliverycontext "fabquote/internal/delivery/context"
	"fabquote/internal/domain/entity"
	"fabquote/internal/domain/repository"
	"fabquote/internal/domain/service"
	"fabquote/internal/errors"
	"fabquote/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	shortIDLength       = 8
	defaultCustomerName = "Customer"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	profileRepo repository.ProfileRepository
	sender      service.MessageSender
	paymentLink string
	logger      *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Sender      service.MessageSender
	Config      *config.Config
	Logger      *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	srv := &notificationService{
		profileRepo: params.ProfileRepo,
		sender:      params.Sender,
		logger:      params.Logger,
	}
	if params.Config != nil && params.Config.Payment != nil {
		srv.paymentLink = params.Config.Payment.LinkBaseURL
	}

	return srv
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleQuotationEvent messages the customer about a status change.
func (srv *notificationService) HandleQuotationEvent(ctx context.Context, event *service.QuotationEvent) error {
	if event.Type != service.QuotationEventStatusChanged && event.Type != service.QuotationEventPaid {
		srv.log(ctx).Debug("Event type does not notify customers", slog.String("event_type", string(event.Type)))

		return nil
	}

	ownerID, err := uuid.Parse(event.OwnerID)
	if err != nil {
		return errors.Wrapf(err, "invalid owner id %q", event.OwnerID)
	}

	profile, err := srv.profileRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Info("No profile for quotation owner, skipping notification", slog.String("quotation_id", event.QuotationID))

			return nil
		}

		return errors.Wrap(err, "failed to find owner profile")
	}

	if profile.Phone == "" {
		srv.log(ctx).Info("Owner has no phone number, skipping notification", slog.String("quotation_id", event.QuotationID))

		return nil
	}

	name := profile.FullName
	if name == "" {
		name = event.OwnerName
	}
	if name == "" {
		name = defaultCustomerName
	}

	body := srv.renderStatusMessage(name, event)
	if err := srv.sender.SendWhatsApp(ctx, profile.Phone, body); err != nil {
		return errors.Wrap(err, "failed to send status message")
	}

	srv.log(ctx).Info("Status message sent",
		slog.String("quotation_id", event.QuotationID),
		slog.String("status", event.Status),
	)

	return nil
}

// renderStatusMessage builds the WhatsApp text for the quotation's new status.
func (srv *notificationService) renderStatusMessage(name string, event *service.QuotationEvent) string {
	shortID := event.QuotationID
	if len(shortID) > shortIDLength {
		shortID = shortID[:shortIDLength]
	}

	switch entity.QuotationStatus(event.Status) {
	case entity.StatusQuoted:
		symbol := entity.Currency(event.Currency).Symbol()
		total := event.Total
		if total == "" {
			total = "0.00"
		}

		return fmt.Sprintf("Hello %s,\n\nYour quotation #%s is ready. The total amount is %s%s.\n\nYou can view and pay for your order here:\n%s",
			name, shortID, symbol, total, srv.paymentLink)
	case entity.StatusShipped:
		return fmt.Sprintf("Hello %s,\n\nGreat news! Your order #%s has been shipped. You can track its status on your profile page.",
			name, shortID)
	default:
		return fmt.Sprintf("Hello %s,\n\nThis is an update regarding your quotation #%s. The current status is: %s.\n\nYou can view more details here:\n%s",
			name, shortID, event.Status, srv.paymentLink)
	}
}
