package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuotation_IsPriced(t *testing.T) {
	total := decimal.NewFromInt(4500)
	currency := CurrencyINR

	assert.False(t, (&Quotation{}).IsPriced())
	assert.False(t, (&Quotation{Total: &total}).IsPriced())
	assert.False(t, (&Quotation{Currency: &currency}).IsPriced())
	assert.True(t, (&Quotation{Total: &total, Currency: &currency}).IsPriced())
}

func TestQuotationPatch_ApplyAndIsEmpty(t *testing.T) {
	assert.True(t, QuotationPatch{}.IsEmpty())

	total := decimal.NewFromInt(4500)
	currency := CurrencyUSD
	patch := QuotationPatch{Total: &total, Currency: &currency}
	assert.False(t, patch.IsEmpty())

	q := &Quotation{Status: StatusPendingReview}
	patch.Apply(q)

	assert.Equal(t, StatusPendingReview, q.Status)
	assert.True(t, q.IsPriced())
	total = decimal.NewFromInt(1)
	assert.True(t, q.Total.Equal(decimal.NewFromInt(4500)), "apply copies values")
}
