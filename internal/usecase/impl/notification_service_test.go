package impl

import (
	"context"
	"testing"

	"fabquote/config"
	"fabquote/internal/domain/entity"
	"fabquote/internal/domain/repository"
	"fabquote/internal/domain/service"
	mockRepo "fabquote/internal/mocks/repository"
	mockSvc "fabquote/internal/mocks/service"
	"fabquote/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service     usecase.NotificationUsecase
	profileRepo *mockRepo.MockProfileRepository
	sender      *mockSvc.MockMessageSender
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	sender := mockSvc.NewMockMessageSender(t)

	return notificationServiceFixtures{
		service: NewNotificationService(NotificationServiceParams{
			ProfileRepo: profileRepo,
			Sender:      sender,
			Config:      &config.Config{Payment: &config.PaymentConfig{LinkBaseURL: testPaymentLink}},
			Logger:      discardLogger(),
		}),
		profileRepo: profileRepo,
		sender:      sender,
	}
}

func statusEvent(ownerID uuid.UUID, status entity.QuotationStatus) *service.QuotationEvent {
	return &service.QuotationEvent{
		EventID:     uuid.NewString(),
		Type:        service.QuotationEventStatusChanged,
		QuotationID: "0b8f5a8e-9a4f-4d8e-9b0c-6a2f3c1d2e4f",
		OwnerID:     ownerID.String(),
		Status:      string(status),
	}
}

func TestNotificationService_HandleQuotationEvent_Messages(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name     string
		event    func() *service.QuotationEvent
		fullName string
		want     string
	}{
		{
			name: "quoted",
			event: func() *service.QuotationEvent {
				e := statusEvent(ownerID, entity.StatusQuoted)
				e.Total = "4500.00"
				e.Currency = "INR"

				return e
			},
			fullName: "Asha",
			want:     "Hello Asha,\n\nYour quotation #0b8f5a8e is ready. The total amount is ₹4500.00.\n\nYou can view and pay for your order here:\n" + testPaymentLink,
		},
		{
			name:     "shipped",
			event:    func() *service.QuotationEvent { return statusEvent(ownerID, entity.StatusShipped) },
			fullName: "Asha",
			want:     "Hello Asha,\n\nGreat news! Your order #0b8f5a8e has been shipped. You can track its status on your profile page.",
		},
		{
			name:  "other status without a name",
			event: func() *service.QuotationEvent { return statusEvent(ownerID, entity.StatusInProduction) },
			want:  "Hello Customer,\n\nThis is an update regarding your quotation #0b8f5a8e. The current status is: In Production.\n\nYou can view more details here:\n" + testPaymentLink,
		},
		{
			name: "paid",
			event: func() *service.QuotationEvent {
				e := statusEvent(ownerID, entity.StatusPaid)
				e.Type = service.QuotationEventPaid

				return e
			},
			fullName: "Asha",
			want:     "Hello Asha,\n\nThis is an update regarding your quotation #0b8f5a8e. The current status is: Paid.\n\nYou can view more details here:\n" + testPaymentLink,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNotificationService(t)

			fx.profileRepo.EXPECT().FindByID(mock.Anything, ownerID).
				Return(&entity.Profile{ID: ownerID, FullName: tt.fullName, Phone: "+919876543210"}, nil)
			fx.sender.EXPECT().SendWhatsApp(mock.Anything, "+919876543210", tt.want).Return(nil)

			require.NoError(t, fx.service.HandleQuotationEvent(context.Background(), tt.event()))
		})
	}
}

func TestNotificationService_HandleQuotationEvent_Skips(t *testing.T) {
	ownerID := uuid.New()

	t.Run("submitted events", func(t *testing.T) {
		fx := createTestNotificationService(t)
		event := statusEvent(ownerID, entity.StatusPendingReview)
		event.Type = service.QuotationEventSubmitted

		assert.NoError(t, fx.service.HandleQuotationEvent(context.Background(), event))
	})

	t.Run("no profile", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.profileRepo.EXPECT().FindByID(mock.Anything, ownerID).Return(nil, repository.ErrProfileNotFound)

		assert.NoError(t, fx.service.HandleQuotationEvent(context.Background(), statusEvent(ownerID, entity.StatusShipped)))
	})

	t.Run("no phone", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.profileRepo.EXPECT().FindByID(mock.Anything, ownerID).Return(&entity.Profile{ID: ownerID}, nil)

		assert.NoError(t, fx.service.HandleQuotationEvent(context.Background(), statusEvent(ownerID, entity.StatusShipped)))
	})
}

func TestNotificationService_HandleQuotationEvent_SendFailure(t *testing.T) {
	fx := createTestNotificationService(t)
	ownerID := uuid.New()

	fx.profileRepo.EXPECT().FindByID(mock.Anything, ownerID).Return(&entity.Profile{ID: ownerID, Phone: "+919876543210"}, nil)
	fx.sender.EXPECT().SendWhatsApp(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("rate limited"))

	err := fx.service.HandleQuotationEvent(context.Background(), statusEvent(ownerID, entity.StatusShipped))
	assert.Error(t, err)
}
