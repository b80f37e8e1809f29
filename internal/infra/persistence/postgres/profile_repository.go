package postgres

import (
	"context"
	"time"

	"fabquote/internal/domain/entity"
	"fabquote/internal/domain/repository"
	"fabquote/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves a profile by identity id.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// CreateIfAbsent inserts the profile unless the identity already has one.
func (repo *profileRepository) CreateIfAbsent(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)
	if profileM.Status == "" {
		profileM.Status = string(entity.ProfileStatusUnverified)
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(profileM).Error; err != nil {
		return errors.Wrap(err, "failed to create profile")
	}

	return nil
}

// UpdateDetails changes the owner-editable fields.
func (repo *profileRepository) UpdateDetails(ctx context.Context, id uuid.UUID, fullName, phone string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"full_name":  fullName,
			"phone":      phone,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// MarkVerified flips an unverified profile to verified exactly once.
func (repo *profileRepository) MarkVerified(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ? AND status = ?", id, string(entity.ProfileStatusUnverified)).
		Updates(map[string]any{
			"status":     string(entity.ProfileStatusVerified),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to verify profile")
	}

	if result.RowsAffected > 0 {
		return true, nil
	}

	if _, err := repo.FindByID(ctx, id); err != nil {
		return false, err
	}

	return false, nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:        data.ID,
		FullName:  data.FullName,
		Phone:     data.Phone,
		Status:    entity.ProfileStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:        data.ID,
		FullName:  data.FullName,
		Phone:     data.Phone,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
