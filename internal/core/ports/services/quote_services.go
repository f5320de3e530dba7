package services

import (
	"context"

	"github.com/SscSPs/fx_payments_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// QuoteSvcFacade defines the quote engine surface.
type QuoteSvcFacade interface {
	// GetQuote prices a conversion of amount from sourceCode to destCode with
	// freshly sampled rates, a flat fee and an advisory expiry. amount must
	// already be validated positive by the caller.
	GetQuote(ctx context.Context, sourceCode, destCode string, amount decimal.Decimal) (*domain.Quote, error)
}
