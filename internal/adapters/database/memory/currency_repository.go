package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/fx_payments_app/internal/apperrors"
	"github.com/SscSPs/fx_payments_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_payments_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// currencySeed is one row of the static reference table. Min == Max marks a
// pegged/base currency.
type currencySeed struct {
	id       int
	code     string
	symbol   string
	min, max string
}

// The fixed currency set with USD-relative rate ranges for random sampling.
var currencySeeds = []currencySeed{
	{1, "USD", "$", "1.00", "1.00"},
	{2, "EUR", "€", "0.85", "1.15"},
	{3, "GBP", "£", "0.75", "0.95"},
	{4, "JPY", "¥", "140.00", "160.00"},
	{5, "AUD", "A$", "1.45", "1.65"},
	{6, "CAD", "C$", "1.30", "1.50"},
	{7, "CHF", "CHF", "0.85", "1.05"},
	{8, "CNY", "¥", "6.80", "7.40"},
	{9, "INR", "₹", "82.00", "85.00"},
	{10, "NZD", "NZ$", "1.60", "1.80"},
}

// CurrencyRepository serves the immutable currency reference data from memory.
type CurrencyRepository struct {
	currencies map[string]domain.Currency
	ranges     map[string]domain.RateRange
	order      []string // stable listing order
}

// NewCurrencyRepository builds the repository from the static seed table. The
// baseline FxRate on each currency is the midpoint of its range; quotes
// overwrite it with a fresh sample on their snapshots.
func NewCurrencyRepository() portsrepo.CurrencyRepositoryFacade {
	r := &CurrencyRepository{
		currencies: make(map[string]domain.Currency, len(currencySeeds)),
		ranges:     make(map[string]domain.RateRange, len(currencySeeds)),
		order:      make([]string, 0, len(currencySeeds)),
	}
	two := decimal.NewFromInt(2)
	for _, seed := range currencySeeds {
		min := decimal.RequireFromString(seed.min)
		max := decimal.RequireFromString(seed.max)
		r.currencies[seed.code] = domain.Currency{
			ID:           seed.id,
			CurrencyCode: seed.code,
			Symbol:       seed.symbol,
			FxRate:       min.Add(max).Div(two),
		}
		r.ranges[seed.code] = domain.RateRange{
			CurrencyCode: seed.code,
			Min:          min,
			Max:          max,
		}
		r.order = append(r.order, seed.code)
	}
	return r
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *CurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, ok := r.currencies[strings.ToUpper(currencyCode)]
	if !ok {
		return nil, fmt.Errorf("currency code '%s': %w", currencyCode, apperrors.ErrCurrencyNotFound)
	}
	return &currency, nil
}

// FindRateRangeByCode retrieves the rate range configured for a currency.
func (r *CurrencyRepository) FindRateRangeByCode(ctx context.Context, currencyCode string) (*domain.RateRange, error) {
	rng, ok := r.ranges[strings.ToUpper(currencyCode)]
	if !ok {
		return nil, fmt.Errorf("currency code '%s': %w", currencyCode, apperrors.ErrCurrencyNotFound)
	}
	return &rng, nil
}

// ListCurrencies retrieves all supported currencies in seed order.
func (r *CurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies := make([]domain.Currency, 0, len(r.order))
	for _, code := range r.order {
		currencies = append(currencies, r.currencies[code])
	}
	return currencies, nil
}
