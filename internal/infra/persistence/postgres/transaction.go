// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"fabquote/internal/domain/repository"
	"fabquote/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// NewQuotationRepository creates a new quotation repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewQuotationRepository() repository.QuotationRepository {
	return NewQuotationRepository(f.tx)
}

// NewProfileRepository creates a new profile repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewProfileRepository() repository.ProfileRepository {
	return NewProfileRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then re-panic so Fx or the recover middleware can handle it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
