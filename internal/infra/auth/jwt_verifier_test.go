package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabquote/internal/domain/service"
)

const testSecret = "test_provider_secret_key_very_long_for_testing"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestJWTVerifier_Verify(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "https://auth.example.com", "fabquote", discardLogger())
	require.NoError(t, err)

	userID := uuid.New()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":            userID.String(),
		"iss":            "https://auth.example.com",
		"aud":            "fabquote",
		"exp":            time.Now().Add(time.Hour).Unix(),
		"email":          "asha@example.com",
		"email_verified": true,
		"name":           "Asha",
	})

	identity, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.Subject)
	assert.Equal(t, "asha@example.com", identity.Email)
	assert.True(t, identity.EmailVerified)
	assert.Equal(t, "Asha", identity.Name)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "https://auth.example.com", "fabquote", discardLogger())
	require.NoError(t, err)

	valid := jwt.MapClaims{
		"sub": uuid.NewString(),
		"iss": "https://auth.example.com",
		"aud": "fabquote",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	with := func(key string, value any) jwt.MapClaims {
		claims := jwt.MapClaims{}
		for k, v := range valid {
			claims[k] = v
		}
		if value == nil {
			delete(claims, key)
		} else {
			claims[key] = value
		}

		return claims
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong secret", token: signToken(t, "another_secret_that_is_long_enough", valid)},
		{name: "expired", token: signToken(t, testSecret, with("exp", time.Now().Add(-time.Minute).Unix()))},
		{name: "missing expiry", token: signToken(t, testSecret, with("exp", nil))},
		{name: "wrong issuer", token: signToken(t, testSecret, with("iss", "https://evil.example.com"))},
		{name: "wrong audience", token: signToken(t, testSecret, with("aud", "other"))},
		{name: "missing subject", token: signToken(t, testSecret, with("sub", nil))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(context.Background(), tt.token)
			assert.ErrorIs(t, err, service.ErrInvalidToken)
		})
	}
}

func TestJWTVerifier_RejectsNoneAlgorithm(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "", "", discardLogger())
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTVerifier_NonUUIDSubject(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "", "", discardLogger())
	require.NoError(t, err)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "firebase-uid-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	first, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	second, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, first.Subject, second.Subject)
	assert.NotEqual(t, uuid.Nil, first.Subject)
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier("", "", "", discardLogger())
	assert.Error(t, err)
}
