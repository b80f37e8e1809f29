package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"fabquote/config"
	deliverycontext "fabquote/internal/delivery/context"
	"fabquote/internal/domain/constants"
	"fabquote/internal/domain/service"
	"fabquote/internal/errors"
	"fabquote/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator checks a Google-signed OIDC token for the given audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying quotation events
type PushHandler struct {
	verifyPushAuth bool
	pushAudience   string
	validateToken  tokenValidator
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	h := &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}
	if params.Config.PubSub != nil {
		h.pushAudience = params.Config.PubSub.PushAudience
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.QuotationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse quotation event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	ctx, reqLogger := deliverycontext.WithScope(ctx, h.logger, requestID)

	reqLogger.Info("[Worker] Processing quotation event",
		slog.String("event_id", event.EventID),
		slog.String("event_type", string(event.Type)),
		slog.String("quotation_id", event.QuotationID),
	)

	if err := h.process(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process quotation event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Quotation event processed", slog.String("event_id", event.EventID))

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.QuotationEvent) string {
	// Attributes win over the payload, which wins over the inbound header.
	for _, candidate := range []string{
		pushMsg.Message.Attributes["request_id"],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	} {
		if candidate != "" {
			return deliverycontext.NormalizeRequestID(candidate)
		}
	}

	return deliverycontext.NewRequestID()
}

// process hands the event to the notifier. Malformed events are dropped; delivery failures are retried.
func (h *PushHandler) process(ctx context.Context, event *service.QuotationEvent) error {
	if event.QuotationID == "" || event.OwnerID == "" {
		return errors.New("event is missing quotation or owner id")
	}

	if _, err := uuid.Parse(event.OwnerID); err != nil {
		return errors.Wrap(err, "invalid owner id")
	}

	if err := h.notificationUC.HandleQuotationEvent(ctx, event); err != nil {
		return newRetryableError(err)
	}

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience defaults to the URL of this endpoint
	audience := h.pushAudience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http" // For local development
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	// Validate the token using Google's ID token validator
	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
