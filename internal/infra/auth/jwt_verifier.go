package auth

import (
	"context"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"fabquote/internal/domain/service"
)

// providerClaims are the claims asserted by the identity provider's session tokens.
type providerClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	jwt.RegisteredClaims
}

// jwtVerifier verifies HMAC-signed provider session tokens.
type jwtVerifier struct {
	secret []byte
	parser *jwt.Parser
	logger *slog.Logger
}

// NewJWTVerifier creates an IdentityVerifier for HS256 provider tokens.
// Issuer and audience are checked only when set.
func NewJWTVerifier(secret, issuer, audience string, logger *slog.Logger) (service.IdentityVerifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	return &jwtVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(opts...),
		logger: logger,
	}, nil
}

// Verify parses and validates the token and returns the identity it asserts.
func (v *jwtVerifier) Verify(ctx context.Context, token string) (*service.Identity, error) {
	claims := &providerClaims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		v.logger.DebugContext(ctx, "session token rejected", slog.Any("error", err))

		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	if claims.Subject == "" {
		return nil, errors.Wrap(service.ErrInvalidToken, "token has no subject")
	}

	return &service.Identity{
		Subject:       subjectID(claims.Subject),
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
		Name:          claims.Name,
	}, nil
}
