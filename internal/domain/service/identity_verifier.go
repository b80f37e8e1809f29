package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidToken is returned when a session token cannot be verified.
var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is what the identity provider asserts about a session.
type Identity struct {
	Subject       uuid.UUID
	Email         string
	EmailVerified bool
	Name          string
}

// IdentityVerifier defines the interface for verifying identity provider session tokens.
// Sign-up, sign-in and password flows live entirely in the provider.
type IdentityVerifier interface {
	// Verify checks the token and returns the identity it asserts.
	Verify(ctx context.Context, token string) (*Identity, error)
}
