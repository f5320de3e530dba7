package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fx_payments_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		status domain.TransactionStatus
		want   bool
	}{
		{"processing is not terminal", domain.StatusProcessing, false},
		{"sent is not terminal", domain.StatusSent, false},
		{"settled is terminal", domain.StatusSettled, true},
		{"failed is terminal", domain.StatusFailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsTerminal())
		})
	}
}

func TestTransaction_Validate(t *testing.T) {
	now := time.Now()

	valid := domain.Transaction{
		TransactionID:       "txn_123",
		Status:              domain.StatusProcessing,
		SourceAmount:        decimal.NewFromInt(1000),
		SourceCurrency:      "USD",
		DestinationCurrency: "EUR",
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	tests := []struct {
		name    string
		mutate  func(txn *domain.Transaction)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid transaction",
			mutate: func(txn *domain.Transaction) {},
		},
		{
			name:    "missing id",
			mutate:  func(txn *domain.Transaction) { txn.TransactionID = "" },
			wantErr: true,
			errMsg:  "transaction ID is required",
		},
		{
			name:    "unknown status",
			mutate:  func(txn *domain.Transaction) { txn.Status = "REVERSED" },
			wantErr: true,
			errMsg:  "unknown transaction status",
		},
		{
			name:    "non-positive source amount",
			mutate:  func(txn *domain.Transaction) { txn.SourceAmount = decimal.Zero },
			wantErr: true,
			errMsg:  "source amount must be positive",
		},
		{
			name:    "missing currency codes",
			mutate:  func(txn *domain.Transaction) { txn.DestinationCurrency = "" },
			wantErr: true,
			errMsg:  "currency codes are required",
		},
		{
			name:    "updatedAt before createdAt",
			mutate:  func(txn *domain.Transaction) { txn.UpdatedAt = now.Add(-time.Second) },
			wantErr: true,
			errMsg:  "updatedAt must not precede createdAt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := valid
			tt.mutate(&txn)
			err := txn.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_Elapsed(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	txn := domain.Transaction{CreatedAt: created}

	assert.Equal(t, 15*time.Second, txn.Elapsed(created.Add(15*time.Second)))
}

func TestRateRange_Pegged(t *testing.T) {
	pegged := domain.RateRange{CurrencyCode: "USD", Min: decimal.NewFromInt(1), Max: decimal.NewFromInt(1)}
	floating := domain.RateRange{CurrencyCode: "EUR", Min: decimal.RequireFromString("0.85"), Max: decimal.RequireFromString("1.15")}

	assert.True(t, pegged.Pegged())
	assert.False(t, floating.Pegged())
}
