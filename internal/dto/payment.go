package dto

import (
	"fmt"

	"github.com/SscSPs/fx_payments_app/internal/apperrors"
	"github.com/SscSPs/fx_payments_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubmitPaymentRequest carries an accepted quote's economic fields forward
// without the expiry. Amount is a decimal string as issued by the quote.
type SubmitPaymentRequest struct {
	SourceCurrency         string          `json:"sourceCurrency" binding:"required,uppercase,len=3"`
	DestinationCurrency    string          `json:"destinationCurrency" binding:"required,uppercase,len=3"`
	SourceCurrencyObj      CurrencyPayload `json:"sourceCurrencyObj" binding:"required"`
	DestinationCurrencyObj CurrencyPayload `json:"destinationCurrencyObj" binding:"required"`
	Amount                 string          `json:"amount" binding:"required"`
	FxRate                 decimal.Decimal `json:"fxRate" binding:"required"`
	Fees                   decimal.Decimal `json:"fees"`
	TotalPayable           decimal.Decimal `json:"totalPayable" binding:"required"`
}

// ToDomainPaymentRequest validates the amount string and maps the request to
// the domain form consumed by the payment service.
func (r SubmitPaymentRequest) ToDomainPaymentRequest() (domain.PaymentRequest, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return domain.PaymentRequest{}, fmt.Errorf("%w: amount '%s' is not numeric", apperrors.ErrInvalidAmount, r.Amount)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.PaymentRequest{}, fmt.Errorf("%w: amount must be positive", apperrors.ErrInvalidAmount)
	}
	return domain.PaymentRequest{
		SourceCurrency:         r.SourceCurrency,
		DestinationCurrency:    r.DestinationCurrency,
		SourceCurrencyObj:      r.SourceCurrencyObj.ToDomainCurrency(),
		DestinationCurrencyObj: r.DestinationCurrencyObj.ToDomainCurrency(),
		Amount:                 amount,
		FxRate:                 r.FxRate,
		Fees:                   r.Fees,
		TotalPayable:           r.TotalPayable,
	}, nil
}
