// Package payment verifies client-reported payments against the gateway.
package payment

import (
	"context"
	"log/slog"
	"strconv"

	"fabquote/internal/domain/service"
	"fabquote/internal/errors"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
)

const statusApproved = "approved"

// ErrMissingAccessToken is returned when the gateway is selected without credentials.
var ErrMissingAccessToken = errors.New("missing mercadopago access token")

// paymentGetter is the subset of the Mercado Pago payment client used for verification.
type paymentGetter interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

type mercadoPagoVerifier struct {
	client paymentGetter
	logger *slog.Logger
}

// NewMercadoPagoVerifier creates a verifier backed by the Mercado Pago payments API
func NewMercadoPagoVerifier(accessToken string, logger *slog.Logger) (service.PaymentVerifier, error) {
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mercadopago config")
	}

	logger.Info("Mercado Pago payment verifier initialized")

	return &mercadoPagoVerifier{
		client: payment.NewClient(cfg),
		logger: logger,
	}, nil
}

// Verify looks the payment up at the gateway
func (v *mercadoPagoVerifier) Verify(ctx context.Context, reference string) (*service.PaymentVerification, error) {
	id, err := strconv.Atoi(reference)
	if err != nil {
		return &service.PaymentVerification{Reference: reference}, nil
	}

	resp, err := v.client.Get(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch payment %s", reference)
	}

	v.logger.Debug("Payment fetched from gateway",
		slog.String("payment_reference", reference),
		slog.String("status", resp.Status),
	)

	return &service.PaymentVerification{
		Reference:         reference,
		Approved:          resp.Status == statusApproved,
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
		Amount:            decimal.NewFromFloat(resp.TransactionAmount),
		Currency:          resp.CurrencyID,
	}, nil
}
