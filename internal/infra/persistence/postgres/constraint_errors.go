package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for constraint error checking.
// GORM translates driver errors only when TranslateError is enabled, so the message is checked as well.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "23514") // PostgreSQL check_violation error code
}
