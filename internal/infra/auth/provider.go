package auth

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"fabquote/config"
	"fabquote/internal/domain/constants"
	"fabquote/internal/domain/service"
)

// VerifierParams holds dependencies for IdentityVerifier, injected by Fx
type VerifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewIdentityVerifier creates an IdentityVerifier based on configuration
func NewIdentityVerifier(params VerifierParams) (service.IdentityVerifier, error) {
	cfg := params.Config.Auth
	if cfg == nil {
		return nil, errors.New("auth configuration is required")
	}

	switch cfg.Provider {
	case constants.AuthProviderFirebase:
		return NewFirebaseVerifier(params.Ctx, cfg.Firebase, params.Logger)
	case constants.AuthProviderJWT, "":
		return NewJWTVerifier(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, params.Logger)
	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Provider)
	}
}

// Module provides the identity verifier
var Module = fx.Options(
	fx.Provide(NewIdentityVerifier),
)
