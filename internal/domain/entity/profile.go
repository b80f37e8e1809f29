package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProfileStatus tracks whether the identity provider has confirmed the customer's email.
type ProfileStatus string

const (
	ProfileStatusUnverified ProfileStatus = "unverified"
	ProfileStatusVerified   ProfileStatus = "verified"
)

// Profile holds the contact details for one customer identity.
type Profile struct {
	ID        uuid.UUID     `json:"id"` // Same as the identity provider subject.
	FullName  string        `json:"full_name"`
	Phone     string        `json:"phone"`
	Status    ProfileStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// IsVerified reports whether the profile has been verified.
func (p *Profile) IsVerified() bool {
	return p.Status == ProfileStatusVerified
}
