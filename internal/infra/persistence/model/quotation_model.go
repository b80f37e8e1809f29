package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// QuotationModel is the GORM-specific struct for the 'quotations' table.
// Rows are hard-deleted so a cancelled quotation can never be written again.
type QuotationModel struct {
	ID                uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OwnerID           uuid.UUID           `gorm:"type:uuid;not null;index"`
	OwnerName         string              `gorm:"type:varchar(255);not null;default:''"`
	Type              string              `gorm:"type:varchar(20);not null"`
	Status            string              `gorm:"type:varchar(32);not null;index"`
	Config            datatypes.JSON      `gorm:"not null"`
	Total             decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	Currency          *string             `gorm:"type:varchar(3)"`
	AdditionalMessage string              `gorm:"type:text;not null;default:''"`
	FilePath          *string             `gorm:"type:text;index"`
	PaymentReference  *string             `gorm:"type:varchar(255)"`
	CreatedAt         time.Time           `gorm:"index"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuotationModel) TableName() string {
	return "quotations"
}
