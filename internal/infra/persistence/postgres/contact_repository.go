package postgres

import (
	"context"

	"fabquote/internal/domain/entity"
	"fabquote/internal/domain/repository"
	"fabquote/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// Create stores a new submission.
func (repo *contactRepository) Create(ctx context.Context, submission *entity.ContactSubmission) error {
	if submission.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate submission id")
		}
		submission.ID = id
	}

	submissionM := &model.ContactSubmissionModel{
		ID:          submission.ID,
		Name:        submission.Name,
		Company:     submission.Company,
		Email:       submission.Email,
		Phone:       submission.Phone,
		ServiceType: submission.ServiceType,
		Message:     submission.Message,
		FilePath:    submission.FilePath,
	}

	if err := repo.db.WithContext(ctx).Create(submissionM).Error; err != nil {
		return errors.Wrap(err, "failed to create contact submission")
	}

	submission.CreatedAt = submissionM.CreatedAt

	return nil
}

// FindAll retrieves submissions, newest first. A non-positive limit returns every row.
func (repo *contactRepository) FindAll(ctx context.Context, limit int) ([]*entity.ContactSubmission, error) {
	var submissionModels []*model.ContactSubmissionModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&submissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list contact submissions")
	}

	submissions := make([]*entity.ContactSubmission, 0, len(submissionModels))
	for _, submissionM := range submissionModels {
		submissions = append(submissions, &entity.ContactSubmission{
			ID:          submissionM.ID,
			Name:        submissionM.Name,
			Company:     submissionM.Company,
			Email:       submissionM.Email,
			Phone:       submissionM.Phone,
			ServiceType: submissionM.ServiceType,
			Message:     submissionM.Message,
			FilePath:    submissionM.FilePath,
			CreatedAt:   submissionM.CreatedAt,
		})
	}

	return submissions, nil
}
