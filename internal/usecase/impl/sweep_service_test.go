package impl

import (
	"context"
	"testing"
	"time"

	"fabquote/internal/domain/service"
	mockRepo "fabquote/internal/mocks/repository"
	mockSvc "fabquote/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSweepService_SweepOrphans(t *testing.T) {
	quotationRepo := mockRepo.NewMockQuotationRepository(t)
	objectStore := mockSvc.NewMockObjectStore(t)
	srv := NewSweepService(SweepServiceParams{
		QuotationRepo: quotationRepo,
		ObjectStore:   objectStore,
		Logger:        discardLogger(),
	})

	ctx := context.Background()
	owner := uuid.NewString()
	old := time.Now().Add(-48 * time.Hour)
	referenced := owner + "/1-design.zip"
	orphan := owner + "/2-abandoned.zip"
	stuck := owner + "/3-stuck.zip"
	fresh := owner + "/4-fresh.zip"

	objectStore.EXPECT().List(ctx, "").Return([]service.ObjectAttributes{
		{Key: referenced, ModTime: old},
		{Key: orphan, ModTime: old},
		{Key: stuck, ModTime: old},
		{Key: fresh, ModTime: time.Now()},
		{Key: "public/contact-submissions/5-notes.pdf", ModTime: old},
	}, nil)
	quotationRepo.EXPECT().
		ReferencedFilePaths(ctx, []string{referenced, orphan, stuck}).
		Return([]string{referenced}, nil)
	objectStore.EXPECT().Delete(ctx, orphan).Return(nil)
	objectStore.EXPECT().Delete(ctx, stuck).Return(errors.New("permission denied"))

	result, err := srv.SweepOrphans(ctx, 24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 4, result.Scanned)
	assert.Equal(t, 1, result.Deleted)
	assert.Equal(t, 1, result.Failed)
}

func TestSweepService_SweepOrphans_NothingOldEnough(t *testing.T) {
	quotationRepo := mockRepo.NewMockQuotationRepository(t)
	objectStore := mockSvc.NewMockObjectStore(t)
	srv := NewSweepService(SweepServiceParams{
		QuotationRepo: quotationRepo,
		ObjectStore:   objectStore,
		Logger:        discardLogger(),
	})

	objectStore.EXPECT().List(mock.Anything, "").Return([]service.ObjectAttributes{
		{Key: uuid.NewString() + "/1-design.zip", ModTime: time.Now()},
	}, nil)

	result, err := srv.SweepOrphans(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Deleted)
}
