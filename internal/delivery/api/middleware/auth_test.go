package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fabquote/config"
	deliverycontext "fabquote/internal/delivery/context"
	"fabquote/internal/domain/entity"
	"fabquote/internal/domain/service"
	mockSvc "fabquote/internal/mocks/service"
	mockUC "fabquote/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const staffEmail = "ops@fabquote.example"

type authFixtures struct {
	e         *echo.Echo
	verifier  *mockSvc.MockIdentityVerifier
	profileUC *mockUC.MockProfileUsecase
	seen      *entity.Caller
}

func createTestAuth(t *testing.T) *authFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := &authFixtures{
		e:         echo.New(),
		verifier:  mockSvc.NewMockIdentityVerifier(t),
		profileUC: mockUC.NewMockProfileUsecase(t),
	}

	m := NewAuthMiddleware(AuthMiddlewareParams{
		Verifier:  fx.verifier,
		ProfileUC: fx.profileUC,
		Config:    &config.Config{Staff: &config.StaffConfig{Email: staffEmail}},
		Logger:    logger,
	})

	fx.e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError
	capture := func(c echo.Context) error {
		caller, _ := deliverycontext.GetCaller(c)
		fx.seen = &caller

		return c.NoContent(http.StatusNoContent)
	}
	fx.e.GET("/me", capture, m.Authenticate)
	fx.e.GET("/admin", capture, m.Authenticate, m.RequireStaff)

	return fx
}

func (fx *authFixtures) do(path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate_Customer(t *testing.T) {
	fx := createTestAuth(t)
	subject := uuid.New()

	fx.verifier.EXPECT().Verify(mock.Anything, "tok").
		Return(&service.Identity{Subject: subject, Email: "asha@example.com", EmailVerified: true, Name: "Asha"}, nil)
	fx.profileUC.EXPECT().SyncVerification(mock.Anything, mock.MatchedBy(func(c entity.Caller) bool {
		return c.ID == subject && c.EmailVerified
	})).Return(nil)

	rec := fx.do("/me", "Bearer tok")

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, fx.seen)
	assert.Equal(t, subject, fx.seen.ID)
	assert.Equal(t, entity.RoleCustomer, fx.seen.Role)
	assert.Equal(t, "Asha", fx.seen.Name)
}

func TestAuthMiddleware_Authenticate_StaffByVerifiedEmail(t *testing.T) {
	fx := createTestAuth(t)

	fx.verifier.EXPECT().Verify(mock.Anything, "tok").
		Return(&service.Identity{Subject: uuid.New(), Email: "OPS@fabquote.example", EmailVerified: true}, nil)
	fx.profileUC.EXPECT().SyncVerification(mock.Anything, mock.Anything).Return(nil)

	rec := fx.do("/admin", "Bearer tok")

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, entity.RoleStaff, fx.seen.Role)
}

func TestAuthMiddleware_RequireStaff_RejectsUnverifiedStaffEmail(t *testing.T) {
	fx := createTestAuth(t)

	fx.verifier.EXPECT().Verify(mock.Anything, "tok").
		Return(&service.Identity{Subject: uuid.New(), Email: staffEmail}, nil)
	fx.profileUC.EXPECT().SyncVerification(mock.Anything, mock.Anything).Return(nil)

	rec := fx.do("/admin", "Bearer tok")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"FORBIDDEN"`)
}

func TestAuthMiddleware_Authenticate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(fx *authFixtures)
	}{
		{name: "missing header"},
		{name: "not bearer", header: "Basic abc"},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(fx *authFixtures) {
				fx.verifier.EXPECT().Verify(mock.Anything, "expired").Return(nil, service.ErrInvalidToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuth(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			rec := fx.do("/me", tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, fx.seen)
		})
	}
}
