package impl

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"fabquote/config"
	"fabquote/internal/domain/entity"
	domainerrors "fabquote/internal/domain/errors"
	"fabquote/internal/infra/persistence/postgres"
	"fabquote/internal/infra/storage"
	mockSvc "fabquote/internal/mocks/service"
	"fabquote/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// lifecycleFixtures wires the usecases against SQLite and an in-memory bucket.
type lifecycleFixtures struct {
	quotations   usecase.QuotationUsecase
	settlement   usecase.SettlementUsecase
	cancellation usecase.CancellationUsecase
	sweep        usecase.SweepUsecase
}

func createLifecycleFixtures(t *testing.T) lifecycleFixtures {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, postgres.Migrate(db))

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	objectStore := storage.NewBlobObjectStore(bucket, discardLogger())
	quotationRepo := postgres.NewQuotationRepository(db)
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishQuotationEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	cfg := &config.Config{
		Storage: &config.StorageConfig{SignedURLTTL: time.Minute},
		Payment: &config.PaymentConfig{LinkBaseURL: testPaymentLink},
		Sweeper: &config.SweeperConfig{Enabled: true, GracePeriod: 24 * time.Hour},
	}

	return lifecycleFixtures{
		quotations: NewQuotationService(QuotationServiceParams{
			QuotationRepo: quotationRepo,
			ObjectStore:   objectStore,
			Publisher:     publisher,
			Config:        cfg,
			Logger:        discardLogger(),
		}),
		settlement: NewSettlementService(SettlementServiceParams{
			QuotationRepo: quotationRepo,
			Publisher:     publisher,
			Logger:        discardLogger(),
		}),
		cancellation: NewCancellationService(CancellationServiceParams{
			TxManager:   postgres.NewTransactionManager(db),
			ObjectStore: objectStore,
			Publisher:   publisher,
			Logger:      discardLogger(),
		}),
		sweep: NewSweepService(SweepServiceParams{
			QuotationRepo: quotationRepo,
			ObjectStore:   objectStore,
			Logger:        discardLogger(),
		}),
	}
}

func submitPCB(t *testing.T, fx lifecycleFixtures, caller entity.Caller) *entity.Quotation {
	t.Helper()
	ctx := context.Background()

	design := "PK\x03\x04 gerber archive"
	uploaded, err := fx.quotations.UploadFile(ctx, caller, &usecase.UploadFileInput{
		Type:        entity.QuotationTypePCB,
		FileName:    "design.zip",
		Size:        int64(len(design)),
		ContentType: "application/zip",
		Content:     strings.NewReader(design),
	})
	require.NoError(t, err)

	q, err := fx.quotations.Submit(ctx, caller, &usecase.SubmitQuotationInput{
		Type:     entity.QuotationTypePCB,
		Config:   entity.QuotationConfig{"layers": 4, "width": "100", "height": "80", "quantity": 10},
		FilePath: uploaded.Path,
	})
	require.NoError(t, err)

	return q
}

func TestLifecycle_QuoteSettleShip(t *testing.T) {
	fx := createLifecycleFixtures(t)
	ctx := context.Background()
	owner := customer()
	ops := staff()

	q := submitPCB(t, fx, owner)
	assert.Equal(t, entity.StatusPendingReview, q.Status)
	assert.Nil(t, q.Currency)

	total := decimal.NewFromInt(4500)
	quoted, err := fx.quotations.UpdateQuote(ctx, ops, q.ID, &usecase.UpdateQuoteInput{
		Status:   ptr(entity.StatusQuoted),
		Total:    &total,
		Currency: ptr(entity.CurrencyINR),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusQuoted, quoted.Status)

	paid, err := fx.settlement.ConfirmPayment(ctx, owner, q.ID, "pay_123")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, paid.Status)
	require.NotNil(t, paid.PaymentReference)
	assert.Equal(t, "pay_123", *paid.PaymentReference)

	// A retried confirmation with the same reference is a no-op.
	again, err := fx.settlement.ConfirmPayment(ctx, owner, q.ID, "pay_123")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, again.Status)

	_, err = fx.settlement.ConfirmPayment(ctx, owner, q.ID, "pay_456")
	assert.ErrorIs(t, err, domainerrors.ErrPaymentConflict)

	_, err = fx.quotations.UpdateQuote(ctx, ops, q.ID, &usecase.UpdateQuoteInput{Status: ptr(entity.StatusShipped)})
	require.NoError(t, err)

	err = fx.cancellation.Cancel(ctx, owner, q.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)

	stored, err := fx.quotations.GetQuotation(ctx, owner, q.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusShipped, stored.Status)
	require.NotNil(t, stored.Total)
	assert.True(t, stored.Total.Equal(total))
	assert.EqualValues(t, 4, stored.Config["layers"])
}

func TestLifecycle_CancelRemovesRowAndFile(t *testing.T) {
	fx := createLifecycleFixtures(t)
	ctx := context.Background()
	owner := customer()

	q := submitPCB(t, fx, owner)

	_, err := fx.settlement.ConfirmPayment(ctx, owner, q.ID, "pay_early")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)

	require.NoError(t, fx.cancellation.Cancel(ctx, owner, q.ID))

	_, err = fx.quotations.GetQuotation(ctx, owner, q.ID)
	assert.ErrorIs(t, err, domainerrors.ErrQuotationNotFound)

	result, err := fx.sweep.SweepOrphans(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Scanned)
}
