package entity

import "github.com/google/uuid"

// Caller is the identity performing an operation, resolved once at the identity-provider boundary.
// Every usecase receives it explicitly.
type Caller struct {
	ID            uuid.UUID // Identity provider subject.
	Email         string    // Primary email as reported by the identity provider.
	EmailVerified bool      // Whether the identity provider has confirmed the email.
	Name          string    // Display name, if the provider supplied one.
	Role          Role      // Capability derived from the staff configuration.
}

// IsStaff reports whether the caller holds the staff capability.
func (c Caller) IsStaff() bool {
	return c.Role == RoleStaff
}

// Owns reports whether the caller is the owner of the given identity.
func (c Caller) Owns(ownerID uuid.UUID) bool {
	return c.ID != uuid.Nil && c.ID == ownerID
}

// DisplayName returns the name, falling back to the email.
func (c Caller) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}

	return c.Email
}
