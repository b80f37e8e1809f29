package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentVerification is what the payment gateway reports about a payment.
type PaymentVerification struct {
	Reference         string
	Approved          bool
	Status            string
	ExternalReference string // Order reference supplied at checkout, the quotation id.
	Amount            decimal.Decimal
	Currency          string
}

// PaymentVerifier defines the interface for server-side payment verification.
type PaymentVerifier interface {
	// Verify looks the payment up at the gateway.
	// A nil verification with a nil error means verification is disabled.
	Verify(ctx context.Context, reference string) (*PaymentVerification, error)
}
