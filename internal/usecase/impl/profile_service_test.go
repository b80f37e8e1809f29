package impl

import (
	"context"
	"testing"

	"fabquote/internal/domain/entity"
	domainerrors "fabquote/internal/domain/errors"
	"fabquote/internal/domain/repository"
	mockRepo "fabquote/internal/mocks/repository"
	"fabquote/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	profileRepo *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)

	return profileServiceFixtures{
		service: NewProfileService(ProfileServiceParams{
			TxManager:   txManager,
			ProfileRepo: profileRepo,
			Logger:      discardLogger(),
		}),
		txManager:   txManager,
		profileRepo: profileRepo,
	}
}

func TestProfileService_GetProfile_Existing(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	caller := customer()
	profile := &entity.Profile{ID: caller.ID, FullName: "Asha", Status: entity.ProfileStatusVerified}

	fx.profileRepo.EXPECT().FindByID(ctx, caller.ID).Return(profile, nil)

	got, err := fx.service.GetProfile(ctx, caller)

	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestProfileService_GetProfile_CreatesOnFirstSight(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	caller := customer()
	created := &entity.Profile{ID: caller.ID, FullName: "Asha", Status: entity.ProfileStatusUnverified}

	fx.profileRepo.EXPECT().FindByID(ctx, caller.ID).Return(nil, repository.ErrProfileNotFound).Once()
	fx.profileRepo.EXPECT().
		CreateIfAbsent(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.ID == caller.ID && p.Status == entity.ProfileStatusUnverified
		})).
		Return(nil)
	fx.profileRepo.EXPECT().FindByID(ctx, caller.ID).Return(created, nil).Once()

	got, err := fx.service.GetProfile(ctx, caller)

	require.NoError(t, err)
	assert.Equal(t, entity.ProfileStatusUnverified, got.Status)
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	caller := customer()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().NewProfileRepository().Return(txProfileRepo)
			txProfileRepo.EXPECT().CreateIfAbsent(ctx, mock.Anything).Return(nil)
			txProfileRepo.EXPECT().UpdateDetails(ctx, caller.ID, "Asha Rao", "+919876543210").Return(nil)
			txProfileRepo.EXPECT().FindByID(ctx, caller.ID).Return(&entity.Profile{ID: caller.ID, FullName: "Asha Rao", Phone: "+919876543210"}, nil)

			return fn(mockFactory)
		})

	got, err := fx.service.UpdateProfile(ctx, caller, &usecase.UpdateProfileInput{FullName: " Asha Rao ", Phone: "+919876543210"})

	require.NoError(t, err)
	assert.Equal(t, "+919876543210", got.Phone)
}

func TestProfileService_UpdateProfile_InvalidPhone(t *testing.T) {
	fx := createTestProfileService(t)

	for _, phone := range []string{"9876543210", "+0123456789", "+91 98765 43210", "+1"} {
		_, err := fx.service.UpdateProfile(context.Background(), customer(), &usecase.UpdateProfileInput{Phone: phone})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, phone)
	}
}

func TestProfileService_SyncVerification(t *testing.T) {
	t.Run("verified email flips status", func(t *testing.T) {
		fx := createTestProfileService(t)
		caller := customer()

		fx.profileRepo.EXPECT().CreateIfAbsent(mock.Anything, mock.Anything).Return(nil)
		fx.profileRepo.EXPECT().MarkVerified(mock.Anything, caller.ID).Return(true, nil)

		assert.NoError(t, fx.service.SyncVerification(context.Background(), caller))
	})

	t.Run("unconfirmed email stays unverified", func(t *testing.T) {
		fx := createTestProfileService(t)
		caller := customer()
		caller.EmailVerified = false

		fx.profileRepo.EXPECT().CreateIfAbsent(mock.Anything, mock.Anything).Return(nil)

		assert.NoError(t, fx.service.SyncVerification(context.Background(), caller))
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestProfileService(t)

		fx.profileRepo.EXPECT().CreateIfAbsent(mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		err := fx.service.SyncVerification(context.Background(), customer())
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 502, appErr.HTTPCode())
	})
}
