package domain

import "github.com/shopspring/decimal"

// Currency represents one entry of the fixed currency reference set.
// FxRate is the USD-relative rate; on reference data it is a baseline value,
// on quote/transaction snapshots it is the rate sampled at quote time.
type Currency struct {
	ID           int             `json:"id"`
	CurrencyCode string          `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string          `json:"symbol"`       // e.g., "$"
	FxRate       decimal.Decimal `json:"fxRate"`
}

// RateRange bounds random rate generation for one currency.
type RateRange struct {
	CurrencyCode string          `json:"currencyCode"`
	Min          decimal.Decimal `json:"min"`
	Max          decimal.Decimal `json:"max"`
}

// Pegged reports whether the range collapses to a constant (min == max),
// which marks a pegged or base currency whose rate is never randomized.
func (r RateRange) Pegged() bool {
	return r.Min.Equal(r.Max)
}
