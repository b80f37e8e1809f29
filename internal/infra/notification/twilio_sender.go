package notification

import (
	"context"
	"log/slog"
	"strings"

	"fabquote/config"
	"fabquote/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/fx"
)

const whatsappPrefix = "whatsapp:"

// messageCreator is the subset of the Twilio REST API used to send messages.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type twilioSender struct {
	api    messageCreator
	from   string
	logger *slog.Logger
}

// NewTwilioSender creates a WhatsApp sender using Twilio credentials
func NewTwilioSender(accountSID, authToken, from string, logger *slog.Logger) service.MessageSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &twilioSender{
		api:    client.Api,
		from:   from,
		logger: logger,
	}
}

// SendWhatsApp sends a text message through the Twilio WhatsApp channel
func (s *twilioSender) SendWhatsApp(ctx context.Context, to, body string) error {
	if !strings.HasPrefix(to, "+") {
		return errors.Errorf("phone number %q is not in E.164 form", to)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(whatsappPrefix + to)
	params.SetFrom(whatsappPrefix + strings.TrimPrefix(s.from, whatsappPrefix))
	params.SetBody(body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return errors.Wrap(err, "failed to send WhatsApp message")
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	s.logger.InfoContext(ctx, "WhatsApp message sent", slog.String("sid", sid))

	return nil
}

// noopSender drops messages when notifications are disabled
type noopSender struct {
	logger *slog.Logger
}

func (s *noopSender) SendWhatsApp(ctx context.Context, to, body string) error {
	s.logger.DebugContext(ctx, "[NoopSender] Notifications disabled, skipping message")

	return nil
}

// SenderParams holds dependencies for MessageSender, injected by Fx
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMessageSender creates a MessageSender based on configuration
func NewMessageSender(params SenderParams) (service.MessageSender, error) {
	cfg := params.Config.Notification
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Notifications not enabled, using no-op sender")

		return &noopSender{logger: params.Logger}, nil
	}

	if cfg.Twilio.AccountSID == "" || cfg.Twilio.AuthToken == "" || cfg.Twilio.WhatsAppFrom == "" {
		return nil, errors.New("twilio accountSid, authToken and whatsappFrom are required")
	}

	return NewTwilioSender(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.WhatsAppFrom, params.Logger), nil
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMessageSender),
)
