package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	deliverycontext "fabquote/internal/delivery/context"
	"fabquote/internal/domain/entity"
	domainerrors "fabquote/internal/domain/errors"
	"fabquote/internal/domain/repository"
	"fabquote/internal/errors"
	"fabquote/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var phonePattern = regexp.MustCompile(`^\+[1-9][0-9]{6,14}$`)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func newProfile(caller entity.Caller) *entity.Profile {
	return &entity.Profile{
		ID:       caller.ID,
		FullName: caller.Name,
		Status:   entity.ProfileStatusUnverified,
	}
}

// GetProfile retrieves the caller's profile, creating it if this identity was never seen.
func (srv *profileService) GetProfile(ctx context.Context, caller entity.Caller) (*entity.Profile, error) {
	if caller.ID == uuid.Nil {
		return nil, domainerrors.ErrUnauthorized
	}

	profile, err := srv.profileRepo.FindByID(ctx, caller.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.NewDependencyError(err, "find profile")
	}

	profile = newProfile(caller)
	if err := srv.profileRepo.CreateIfAbsent(ctx, profile); err != nil {
		return nil, domainerrors.NewDependencyError(err, "create profile")
	}

	profile, err = srv.profileRepo.FindByID(ctx, caller.ID)
	if err != nil {
		return nil, domainerrors.NewDependencyError(err, "find profile")
	}

	return profile, nil
}

// UpdateProfile updates the owner-editable profile fields.
func (srv *profileService) UpdateProfile(ctx context.Context, caller entity.Caller, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	if caller.ID == uuid.Nil {
		return nil, domainerrors.ErrUnauthorized
	}

	fullName := strings.TrimSpace(input.FullName)
	phone := strings.TrimSpace(input.Phone)
	if phone != "" && !phonePattern.MatchString(phone) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("phone must be in international format, e.g. +919876543210")
	}

	srv.log(ctx).Info("Updating profile", slog.String("profile_id", caller.ID.String()))

	var updated *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		if err := profileRepo.CreateIfAbsent(ctx, newProfile(caller)); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		if err := profileRepo.UpdateDetails(ctx, caller.ID, fullName, phone); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}

		profile, err := profileRepo.FindByID(ctx, caller.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find profile")
		}
		updated = profile

		return nil
	})
	if err != nil {
		return nil, domainerrors.NewDependencyError(err, "update profile")
	}

	return updated, nil
}

// SyncVerification records a first-seen identity and flips it to verified once the email is confirmed.
func (srv *profileService) SyncVerification(ctx context.Context, caller entity.Caller) error {
	if caller.ID == uuid.Nil {
		return domainerrors.ErrUnauthorized
	}

	if err := srv.profileRepo.CreateIfAbsent(ctx, newProfile(caller)); err != nil {
		return domainerrors.NewDependencyError(err, "create profile")
	}

	if !caller.EmailVerified {
		return nil
	}

	changed, err := srv.profileRepo.MarkVerified(ctx, caller.ID)
	if err != nil {
		return domainerrors.NewDependencyError(err, "verify profile")
	}
	if changed {
		srv.log(ctx).Info("Profile verified", slog.String("profile_id", caller.ID.String()))
	}

	return nil
}
