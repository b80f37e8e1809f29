package payment

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fabquote/config"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentGetter struct {
	resp  *payment.Response
	err   error
	gotID int
}

func (f *fakePaymentGetter) Get(ctx context.Context, id int) (*payment.Response, error) {
	f.gotID = id

	return f.resp, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMercadoPagoVerifier_Approved(t *testing.T) {
	getter := &fakePaymentGetter{resp: &payment.Response{
		ID:                123,
		Status:            "approved",
		ExternalReference: "0190a6f4-7c1e-7a3b-9b7e-2f0c1d2e3f40",
		TransactionAmount: 4500,
		CurrencyID:        "INR",
	}}
	verifier := &mercadoPagoVerifier{client: getter, logger: discardLogger()}

	verification, err := verifier.Verify(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, 123, getter.gotID)
	assert.True(t, verification.Approved)
	assert.Equal(t, "0190a6f4-7c1e-7a3b-9b7e-2f0c1d2e3f40", verification.ExternalReference)
	assert.True(t, decimal.NewFromInt(4500).Equal(verification.Amount))
}

func TestMercadoPagoVerifier_Rejected(t *testing.T) {
	getter := &fakePaymentGetter{resp: &payment.Response{ID: 9, Status: "rejected"}}
	verifier := &mercadoPagoVerifier{client: getter, logger: discardLogger()}

	verification, err := verifier.Verify(context.Background(), "9")
	require.NoError(t, err)
	assert.False(t, verification.Approved)
	assert.Equal(t, "rejected", verification.Status)
}

func TestMercadoPagoVerifier_NonNumericReference(t *testing.T) {
	getter := &fakePaymentGetter{}
	verifier := &mercadoPagoVerifier{client: getter, logger: discardLogger()}

	verification, err := verifier.Verify(context.Background(), "pay_fabricated")
	require.NoError(t, err)
	assert.False(t, verification.Approved)
	assert.Zero(t, getter.gotID)
}

func TestMercadoPagoVerifier_GatewayError(t *testing.T) {
	getter := &fakePaymentGetter{err: assert.AnError}
	verifier := &mercadoPagoVerifier{client: getter, logger: discardLogger()}

	_, err := verifier.Verify(context.Background(), "42")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNewPaymentVerifier(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		verifier, err := NewPaymentVerifier(VerifierParams{Config: &config.Config{}, Logger: discardLogger()})
		require.NoError(t, err)

		verification, err := verifier.Verify(context.Background(), "pay_123")
		require.NoError(t, err)
		assert.Nil(t, verification)
	})

	t.Run("mercadopago requires a token", func(t *testing.T) {
		cfg := &config.Config{Payment: &config.PaymentConfig{Provider: "mercadopago"}}
		_, err := NewPaymentVerifier(VerifierParams{Config: cfg, Logger: discardLogger()})
		assert.ErrorIs(t, err, ErrMissingAccessToken)
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := &config.Config{Payment: &config.PaymentConfig{Provider: "razorpay"}}
		_, err := NewPaymentVerifier(VerifierParams{Config: cfg, Logger: discardLogger()})
		assert.Error(t, err)
	})
}
