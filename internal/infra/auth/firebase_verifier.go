package auth

import (
	"context"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"fabquote/config"
	"fabquote/internal/domain/service"
)

// idTokenVerifier is the subset of the Firebase Auth client used here.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

type firebaseVerifier struct {
	client idTokenVerifier
	logger *slog.Logger
}

// NewFirebaseVerifier creates an IdentityVerifier backed by Firebase Authentication.
func NewFirebaseVerifier(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firebase projectId must be provided")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase auth client")
	}

	logger.Info("Firebase identity verifier initialized", slog.String("projectId", cfg.ProjectID))

	return &firebaseVerifier{client: client, logger: logger}, nil
}

// Verify checks a Firebase ID token. Firebase UIDs are mapped to stable UUIDs.
func (v *firebaseVerifier) Verify(ctx context.Context, token string) (*service.Identity, error) {
	tok, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		v.logger.DebugContext(ctx, "firebase token rejected", slog.Any("error", err))

		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	identity := &service.Identity{Subject: subjectID(tok.UID)}
	if email, ok := tok.Claims["email"].(string); ok {
		identity.Email = email
	}
	if verified, ok := tok.Claims["email_verified"].(bool); ok {
		identity.EmailVerified = verified
	}
	if name, ok := tok.Claims["name"].(string); ok {
		identity.Name = name
	}

	return identity, nil
}
