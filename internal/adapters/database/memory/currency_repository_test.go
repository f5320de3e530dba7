package memory_test

import (
	"context"
	"testing"

	"github.com/SscSPs/fx_payments_app/internal/adapters/database/memory"
	"github.com/SscSPs/fx_payments_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var supportedCodes = []string{"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY", "INR", "NZD"}

func TestCurrencyRepository_FindCurrencyByCode(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCurrencyRepository()

	for _, code := range supportedCodes {
		currency, err := repo.FindCurrencyByCode(ctx, code)
		require.NoError(t, err, "code %s must resolve", code)
		assert.Equal(t, code, currency.CurrencyCode)
		assert.NotEmpty(t, currency.Symbol)
		assert.True(t, currency.FxRate.IsPositive())
	}

	// Lookup is case-insensitive at the repo boundary
	currency, err := repo.FindCurrencyByCode(ctx, "usd")
	require.NoError(t, err)
	assert.Equal(t, "USD", currency.CurrencyCode)

	_, err = repo.FindCurrencyByCode(ctx, "ZZZ")
	assert.ErrorIs(t, err, apperrors.ErrCurrencyNotFound)
}

func TestCurrencyRepository_FindRateRangeByCode(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCurrencyRepository()

	usd, err := repo.FindRateRangeByCode(ctx, "USD")
	require.NoError(t, err)
	assert.True(t, usd.Pegged(), "USD is the base currency and must be pegged")

	eur, err := repo.FindRateRangeByCode(ctx, "EUR")
	require.NoError(t, err)
	assert.False(t, eur.Pegged())
	assert.True(t, eur.Min.LessThan(eur.Max))

	_, err = repo.FindRateRangeByCode(ctx, "ZZZ")
	assert.ErrorIs(t, err, apperrors.ErrCurrencyNotFound)
}

func TestCurrencyRepository_ListCurrencies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCurrencyRepository()

	currencies, err := repo.ListCurrencies(ctx)
	require.NoError(t, err)
	require.Len(t, currencies, len(supportedCodes))

	// Stable seed order, ids contiguous from 1
	for i, currency := range currencies {
		assert.Equal(t, supportedCodes[i], currency.CurrencyCode)
		assert.Equal(t, i+1, currency.ID)
	}
}
