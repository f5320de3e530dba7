package dto

import (
	"github.com/SscSPs/fx_payments_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	ID           int             `json:"id"`
	CurrencyCode string          `json:"currencyCode"`
	Symbol       string          `json:"symbol"`
	FxRate       decimal.Decimal `json:"fxRate"`
}

// CurrencyPayload is the snapshot form embedded in quote and payment bodies.
type CurrencyPayload struct {
	ID           int             `json:"id" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,uppercase,len=3"`
	Symbol       string          `json:"symbol" binding:"required"`
	FxRate       decimal.Decimal `json:"fxRate" binding:"required"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO.
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:           curr.ID,
		CurrencyCode: curr.CurrencyCode,
		Symbol:       curr.Symbol,
		FxRate:       curr.FxRate,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to response DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}

// ToDomainCurrency converts an embedded currency payload back to the domain form.
func (p CurrencyPayload) ToDomainCurrency() domain.Currency {
	return domain.Currency{
		ID:           p.ID,
		CurrencyCode: p.CurrencyCode,
		Symbol:       p.Symbol,
		FxRate:       p.FxRate,
	}
}
