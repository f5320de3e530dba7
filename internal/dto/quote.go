package dto

import (
	"time"

	"github.com/SscSPs/fx_payments_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateQuoteRequest defines the data needed to request a quote. Amount is a
// decimal string; positivity is validated by the handler before the quote
// engine is invoked.
type CreateQuoteRequest struct {
	SourceCurrency      string `json:"sourceCurrency" binding:"required,uppercase,len=3"`
	DestinationCurrency string `json:"destinationCurrency" binding:"required,uppercase,len=3"`
	Amount              string `json:"amount" binding:"required"`
}

// QuoteResponse defines the data returned for a quote.
type QuoteResponse struct {
	SourceCurrency         string           `json:"sourceCurrency"`
	DestinationCurrency    string           `json:"destinationCurrency"`
	SourceCurrencyObj      CurrencyResponse `json:"sourceCurrencyObj"`
	DestinationCurrencyObj CurrencyResponse `json:"destinationCurrencyObj"`
	Amount                 string           `json:"amount"`
	FxRate                 decimal.Decimal  `json:"fxRate"`
	Fees                   decimal.Decimal  `json:"fees"`
	TotalPayable           decimal.Decimal  `json:"totalPayable"`
	QuoteExpiryTime        time.Time        `json:"quoteExpiryTime"`
}

// ToQuoteResponse converts a domain.Quote to QuoteResponse DTO.
func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		SourceCurrency:         q.SourceCurrency,
		DestinationCurrency:    q.DestinationCurrency,
		SourceCurrencyObj:      ToCurrencyResponse(&q.SourceCurrencyObj),
		DestinationCurrencyObj: ToCurrencyResponse(&q.DestinationCurrencyObj),
		Amount:                 q.Amount.String(),
		FxRate:                 q.FxRate,
		Fees:                   q.Fees,
		TotalPayable:           q.TotalPayable,
		QuoteExpiryTime:        q.QuoteExpiryTime,
	}
}
