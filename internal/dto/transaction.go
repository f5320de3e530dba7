package dto

import (
	"time"

	"github.com/SscSPs/fx_payments_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for a ledger record.
type TransactionResponse struct {
	ID                     string           `json:"id"`
	Status                 string           `json:"status"`
	Amount                 decimal.Decimal  `json:"amount"`
	SourceAmount           string           `json:"sourceAmount"`
	SourceCurrency         string           `json:"sourceCurrency"`
	DestinationCurrency    string           `json:"destinationCurrency"`
	SourceCurrencyObj      CurrencyResponse `json:"sourceCurrencyObj"`
	DestinationCurrencyObj CurrencyResponse `json:"destinationCurrencyObj"`
	Fees                   decimal.Decimal  `json:"fees"`
	FxRate                 decimal.Decimal  `json:"fxRate"`
	TotalPayable           decimal.Decimal  `json:"totalPayable"`
	CreatedAt              time.Time        `json:"createdAt"`
	UpdatedAt              time.Time        `json:"updatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                     txn.TransactionID,
		Status:                 string(txn.Status),
		Amount:                 txn.Amount,
		SourceAmount:           txn.SourceAmount.String(),
		SourceCurrency:         txn.SourceCurrency,
		DestinationCurrency:    txn.DestinationCurrency,
		SourceCurrencyObj:      ToCurrencyResponse(&txn.SourceCurrencyObj),
		DestinationCurrencyObj: ToCurrencyResponse(&txn.DestinationCurrencyObj),
		Fees:                   txn.Fees,
		FxRate:                 txn.FxRate,
		TotalPayable:           txn.TotalPayable,
		CreatedAt:              txn.CreatedAt,
		UpdatedAt:              txn.UpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
