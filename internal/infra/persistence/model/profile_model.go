package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
// The primary key is the identity provider subject.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"type:varchar(255);not null;default:''"`
	Phone     string    `gorm:"type:varchar(32);not null;default:''"`
	Status    string    `gorm:"type:varchar(20);not null;default:'unverified'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
