package middleware

import (
	"log/slog"
	"strings"

	"fabquote/config"
	"fabquote/internal/delivery/api/response"
	deliverycontext "fabquote/internal/delivery/context"
	domainerrors "fabquote/internal/domain/errors"
	"fabquote/internal/domain/entity"
	"fabquote/internal/domain/service"
	"fabquote/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier  service.IdentityVerifier
	ProfileUC usecase.ProfileUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// AuthMiddleware resolves the identity provider session into a Caller.
type AuthMiddleware struct {
	verifier   service.IdentityVerifier
	profileUC  usecase.ProfileUsecase
	staffID    string
	staffEmail string
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	m := &AuthMiddleware{
		verifier:  params.Verifier,
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
	if params.Config != nil && params.Config.Staff != nil {
		m.staffID = strings.TrimSpace(params.Config.Staff.IdentityID)
		m.staffEmail = strings.TrimSpace(params.Config.Staff.Email)
	}

	return m
}

// Authenticate verifies the bearer token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)
		if token == authHeader || token == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.Verify(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Rejected session token", slog.Any("error", err))

			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		caller := entity.Caller{
			ID:            identity.Subject,
			Email:         identity.Email,
			EmailVerified: identity.EmailVerified,
			Name:          identity.Name,
			Role:          m.roleOf(identity),
		}

		if err := m.profileUC.SyncVerification(ctx, caller); err != nil {
			return err
		}

		deliverycontext.SetCaller(c, caller)

		return next(c)
	}
}

// RequireStaff rejects callers without the staff capability.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, ok := deliverycontext.GetCaller(c)
		if !ok || !caller.IsStaff() {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

func (m *AuthMiddleware) roleOf(identity *service.Identity) entity.Role {
	if m.staffID != "" && identity.Subject.String() == m.staffID {
		return entity.RoleStaff
	}

	if m.staffEmail != "" && identity.EmailVerified && strings.EqualFold(identity.Email, m.staffEmail) {
		return entity.RoleStaff
	}

	return entity.RoleCustomer
}
