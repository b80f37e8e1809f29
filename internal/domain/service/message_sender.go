package service

import (
	"context"
)

// MessageSender defines the interface for outbound customer messaging
type MessageSender interface {
	// SendWhatsApp sends a text message to a phone number in E.164 form
	SendWhatsApp(ctx context.Context, to, body string) error
}
