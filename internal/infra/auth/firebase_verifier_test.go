package auth

import (
	"context"
	"testing"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabquote/config"
	"fabquote/internal/domain/service"
)

type fakeIDTokenVerifier struct {
	token *fbauth.Token
	err   error
}

func (f *fakeIDTokenVerifier) VerifyIDToken(context.Context, string) (*fbauth.Token, error) {
	return f.token, f.err
}

func TestFirebaseVerifier_Verify(t *testing.T) {
	verifier := &firebaseVerifier{
		client: &fakeIDTokenVerifier{token: &fbauth.Token{
			UID: "Xk2mP9qLr",
			Claims: map[string]interface{}{
				"email":          "ops@example.com",
				"email_verified": true,
				"name":           "Ops",
			},
		}},
		logger: discardLogger(),
	}

	identity, err := verifier.Verify(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, subjectID("Xk2mP9qLr"), identity.Subject)
	assert.Equal(t, "ops@example.com", identity.Email)
	assert.True(t, identity.EmailVerified)
	assert.Equal(t, "Ops", identity.Name)
}

func TestFirebaseVerifier_Rejects(t *testing.T) {
	verifier := &firebaseVerifier{
		client: &fakeIDTokenVerifier{err: assert.AnError},
		logger: discardLogger(),
	}

	_, err := verifier.Verify(context.Background(), "token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestNewIdentityVerifier(t *testing.T) {
	params := func(auth *config.AuthConfig) VerifierParams {
		return VerifierParams{Ctx: context.Background(), Config: &config.Config{Auth: auth}, Logger: discardLogger()}
	}

	_, err := NewIdentityVerifier(params(nil))
	assert.Error(t, err)

	_, err = NewIdentityVerifier(params(&config.AuthConfig{Provider: "saml"}))
	assert.Error(t, err)

	_, err = NewIdentityVerifier(params(&config.AuthConfig{Provider: "firebase"}))
	assert.Error(t, err)

	cfg := &config.AuthConfig{Provider: "jwt"}
	cfg.JWT.Secret = testSecret
	verifier, err := NewIdentityVerifier(params(cfg))
	require.NoError(t, err)
	assert.NotNil(t, verifier)
}
