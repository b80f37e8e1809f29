package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmissionModel is the GORM-specific struct for the 'contact_submissions' table.
type ContactSubmissionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Company     string    `gorm:"type:varchar(255);not null;default:''"`
	Email       string    `gorm:"type:varchar(255);not null"`
	Phone       string    `gorm:"type:varchar(32);not null;default:''"`
	ServiceType string    `gorm:"type:varchar(64);not null;default:''"`
	Message     string    `gorm:"type:text;not null"`
	FilePath    *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ContactSubmissionModel) TableName() string {
	return "contact_submissions"
}
