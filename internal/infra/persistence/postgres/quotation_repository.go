package postgres

import (
	"context"
	"encoding/json"
	"time"

	"fabquote/internal/domain/entity"
	domainerrors "fabquote/internal/domain/errors"
	"fabquote/internal/domain/repository"
	"fabquote/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// referencedPathsChunk bounds the IN list of a single lookup.
const referencedPathsChunk = 500

// quotationRepository implements the repository.QuotationRepository interface.
type quotationRepository struct {
	db *gorm.DB
}

// NewQuotationRepository is the constructor for quotationRepository.
func NewQuotationRepository(db *gorm.DB) repository.QuotationRepository {
	return &quotationRepository{
		db: db,
	}
}

// Create inserts a new quotation.
func (repo *quotationRepository) Create(ctx context.Context, quotation *entity.Quotation) error {
	if quotation.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate quotation id")
		}
		quotation.ID = id
	}

	quotationM, err := fromQuotationDomain(quotation)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(quotationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateQuotation
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required quotation information")
		}

		return errors.Wrap(err, "failed to create quotation")
	}

	quotation.CreatedAt = quotationM.CreatedAt
	quotation.UpdatedAt = quotationM.UpdatedAt

	return nil
}

// FindByID retrieves a quotation by its unique ID.
func (repo *quotationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	var quotationM model.QuotationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&quotationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuotationNotFound
		}

		return nil, errors.Wrap(err, "failed to find quotation by ID")
	}

	return toQuotationDomain(&quotationM)
}

// FindAll retrieves quotations matching the filter, newest first.
func (repo *quotationRepository) FindAll(ctx context.Context, filter entity.QuotationFilter) ([]*entity.Quotation, error) {
	var quotationModels []*model.QuotationModel

	query := repo.db.WithContext(ctx).Model(&model.QuotationModel{})
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if len(filter.Status) > 0 {
		query = query.Where("status IN ?", statusValues(filter.Status))
	}

	if err := query.Order("created_at DESC").Find(&quotationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list quotations")
	}

	quotations := make([]*entity.Quotation, 0, len(quotationModels))
	for _, quotationM := range quotationModels {
		quotation, err := toQuotationDomain(quotationM)
		if err != nil {
			return nil, err
		}
		quotations = append(quotations, quotation)
	}

	return quotations, nil
}

// UpdateInStatus applies the patch in one statement guarded by the observed status.
func (repo *quotationRepository) UpdateInStatus(ctx context.Context, id uuid.UUID, expected entity.QuotationStatus, patch entity.QuotationPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	updates := patchColumns(patch)
	updates["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.QuotationModel{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update quotation")
	}

	if result.RowsAffected == 0 {
		return repo.explainMiss(ctx, id)
	}

	return nil
}

// ClaimInStatus touches the row without changing it so the transaction holds its row lock.
func (repo *quotationRepository) ClaimInStatus(ctx context.Context, id uuid.UUID, allowed []entity.QuotationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QuotationModel{}).
		Where("id = ? AND status IN ?", id, statusValues(allowed)).
		UpdateColumn("updated_at", gorm.Expr("updated_at"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to claim quotation")
	}

	if result.RowsAffected == 0 {
		return repo.explainMiss(ctx, id)
	}

	return nil
}

// DeleteInStatus removes the row if it is still in one of the statuses.
func (repo *quotationRepository) DeleteInStatus(ctx context.Context, id uuid.UUID, allowed []entity.QuotationStatus) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND status IN ?", id, statusValues(allowed)).
		Delete(&model.QuotationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete quotation")
	}

	if result.RowsAffected == 0 {
		return repo.explainMiss(ctx, id)
	}

	return nil
}

// ReferencedFilePaths returns the subset of paths still referenced by a quotation.
func (repo *quotationRepository) ReferencedFilePaths(ctx context.Context, paths []string) ([]string, error) {
	referenced := make([]string, 0)

	for start := 0; start < len(paths); start += referencedPathsChunk {
		end := min(start+referencedPathsChunk, len(paths))

		var chunk []string
		if err := repo.db.WithContext(ctx).
			Model(&model.QuotationModel{}).
			Where("file_path IN ?", paths[start:end]).
			Pluck("file_path", &chunk).Error; err != nil {
			return nil, errors.Wrap(err, "failed to look up referenced file paths")
		}

		referenced = append(referenced, chunk...)
	}

	return referenced, nil
}

// explainMiss tells a vanished row apart from one that moved to another status.
func (repo *quotationRepository) explainMiss(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.QuotationModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to re-read quotation")
	}

	if count == 0 {
		return repository.ErrQuotationNotFound
	}

	return repository.ErrStatusMismatch
}

func patchColumns(patch entity.QuotationPatch) map[string]any {
	updates := make(map[string]any, 4)
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}
	if patch.Total != nil {
		updates["total"] = decimal.NewNullDecimal(*patch.Total)
	}
	if patch.Currency != nil {
		updates["currency"] = string(*patch.Currency)
	}
	if patch.PaymentReference != nil {
		updates["payment_reference"] = *patch.PaymentReference
	}

	return updates
}

func statusValues(statuses []entity.QuotationStatus) []string {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, string(status))
	}

	return values
}

// --- Mapper Functions ---

// toQuotationDomain converts a GORM QuotationModel to a domain Quotation entity.
func toQuotationDomain(data *model.QuotationModel) (*entity.Quotation, error) {
	if data == nil {
		return nil, nil
	}

	config := entity.QuotationConfig{}
	if len(data.Config) > 0 {
		if err := json.Unmarshal(data.Config, &config); err != nil {
			return nil, errors.Wrap(err, "failed to decode quotation config")
		}
	}

	quotation := &entity.Quotation{
		ID:                data.ID,
		OwnerID:           data.OwnerID,
		OwnerName:         data.OwnerName,
		Type:              entity.QuotationType(data.Type),
		Status:            entity.QuotationStatus(data.Status),
		Config:            config,
		AdditionalMessage: data.AdditionalMessage,
		FilePath:          data.FilePath,
		PaymentReference:  data.PaymentReference,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}

	if data.Total.Valid {
		total := data.Total.Decimal
		quotation.Total = &total
	}
	if data.Currency != nil {
		currency := entity.Currency(*data.Currency)
		quotation.Currency = &currency
	}

	return quotation, nil
}

// fromQuotationDomain converts a domain Quotation entity to a GORM QuotationModel.
func fromQuotationDomain(data *entity.Quotation) (*model.QuotationModel, error) {
	if data == nil {
		return nil, nil
	}

	config := data.Config
	if config == nil {
		config = entity.QuotationConfig{}
	}
	rawConfig, err := json.Marshal(config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode quotation config")
	}

	quotationM := &model.QuotationModel{
		ID:                data.ID,
		OwnerID:           data.OwnerID,
		OwnerName:         data.OwnerName,
		Type:              string(data.Type),
		Status:            string(data.Status),
		Config:            datatypes.JSON(rawConfig),
		AdditionalMessage: data.AdditionalMessage,
		FilePath:          data.FilePath,
		PaymentReference:  data.PaymentReference,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}

	if data.Total != nil {
		quotationM.Total = decimal.NewNullDecimal(*data.Total)
	}
	if data.Currency != nil {
		currency := string(*data.Currency)
		quotationM.Currency = &currency
	}

	return quotationM, nil
}
