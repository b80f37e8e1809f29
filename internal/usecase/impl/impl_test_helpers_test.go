package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fabquote/internal/domain/entity"
	"fabquote/internal/domain/repository"
	mockRepo "fabquote/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func customer() entity.Caller {
	return entity.Caller{
		ID:            uuid.New(),
		Email:         "asha@example.com",
		EmailVerified: true,
		Name:          "Asha",
		Role:          entity.RoleCustomer,
	}
}

func staff() entity.Caller {
	return entity.Caller{
		ID:            uuid.New(),
		Email:         "ops@example.com",
		EmailVerified: true,
		Role:          entity.RoleStaff,
	}
}

// quotationFixture builds a quotation owned by the caller in the given status.
func quotationFixture(owner entity.Caller, status entity.QuotationStatus) *entity.Quotation {
	id := uuid.New()
	filePath := owner.ID.String() + "/1700000000000-design.zip"
	q := &entity.Quotation{
		ID:        id,
		OwnerID:   owner.ID,
		OwnerName: owner.Name,
		Type:      entity.QuotationTypePCB,
		Status:    status,
		Config:    entity.QuotationConfig{"layers": 4, "quantity": 10},
		FilePath:  &filePath,
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
	if status != entity.StatusPendingReview {
		total := decimal.NewFromInt(4500)
		currency := entity.CurrencyINR
		q.Total = &total
		q.Currency = &currency
	}

	return q
}

// expectTx runs the transaction callback against a factory serving the given repositories.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, quotationRepo *mockRepo.MockQuotationRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewQuotationRepository().Return(quotationRepo).Maybe()

			return fn(factory)
		})
}

func ptr[T any](v T) *T {
	return &v
}
