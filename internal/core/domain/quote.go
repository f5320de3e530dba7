package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a priced, time-limited offer to convert an amount between two
// currencies. A quote is created fresh per request and never mutated; expiry
// is advisory and enforced by the consuming application, not the engine.
type Quote struct {
	SourceCurrency         string          `json:"sourceCurrency"`
	DestinationCurrency    string          `json:"destinationCurrency"`
	SourceCurrencyObj      Currency        `json:"sourceCurrencyObj"`      // rate snapshot at quote time
	DestinationCurrencyObj Currency        `json:"destinationCurrencyObj"` // rate snapshot at quote time
	Amount                 decimal.Decimal `json:"amount"`                 // source-currency units
	FxRate                 decimal.Decimal `json:"fxRate"`                 // destination units per source unit
	Fees                   decimal.Decimal `json:"fees"`                   // source-currency units
	TotalPayable           decimal.Decimal `json:"totalPayable"`           // destination-currency units
	QuoteExpiryTime        time.Time       `json:"quoteExpiryTime"`
}

// PaymentRequest carries a Quote's economic fields forward once the quote is
// accepted. It is ephemeral; submitting it creates the durable Transaction.
type PaymentRequest struct {
	SourceCurrency         string          `json:"sourceCurrency"`
	DestinationCurrency    string          `json:"destinationCurrency"`
	SourceCurrencyObj      Currency        `json:"sourceCurrencyObj"`
	DestinationCurrencyObj Currency        `json:"destinationCurrencyObj"`
	Amount                 decimal.Decimal `json:"amount"`
	FxRate                 decimal.Decimal `json:"fxRate"`
	Fees                   decimal.Decimal `json:"fees"`
	TotalPayable           decimal.Decimal `json:"totalPayable"`
}
