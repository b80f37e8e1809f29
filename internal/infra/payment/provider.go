package payment

import (
	"context"
	"log/slog"

	"fabquote/config"
	"fabquote/internal/domain/constants"
	"fabquote/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopVerifier keeps the client-driven confirmation contract
type noopVerifier struct{}

func (noopVerifier) Verify(ctx context.Context, reference string) (*service.PaymentVerification, error) {
	return nil, nil
}

// VerifierParams holds dependencies for PaymentVerifier, injected by Fx
type VerifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPaymentVerifier creates a PaymentVerifier based on configuration
func NewPaymentVerifier(params VerifierParams) (service.PaymentVerifier, error) {
	cfg := params.Config.Payment

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PaymentProviderNone {
		params.Logger.Warn("Payment verification disabled, payment references are trusted as reported")

		return noopVerifier{}, nil
	}

	switch cfg.Provider {
	case constants.PaymentProviderMercadoPago:
		return NewMercadoPagoVerifier(cfg.MercadoPago.AccessToken, params.Logger)
	default:
		return nil, errors.Errorf("unknown payment provider: %s", cfg.Provider)
	}
}

// Module provides the payment FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPaymentVerifier),
)
