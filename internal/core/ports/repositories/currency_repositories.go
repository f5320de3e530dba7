package repositories

import (
	"context"

	"github.com/SscSPs/fx_payments_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency reference data.
// The reference set is immutable after initialization, so there is no writer.
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// FindRateRangeByCode retrieves the configured rate range for a currency.
	FindRateRangeByCode(ctx context.Context, currencyCode string) (*domain.RateRange, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
}
