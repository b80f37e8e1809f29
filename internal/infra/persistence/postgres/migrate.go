package postgres

import (
	"fabquote/internal/errors"
	"fabquote/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or alters the tables for every persistence model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
