package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the simulated settlement state of a transaction.
type TransactionStatus string

const (
	StatusProcessing TransactionStatus = "PROCESSING"
	StatusSent       TransactionStatus = "SENT"
	StatusSettled    TransactionStatus = "SETTLED"
	StatusFailed     TransactionStatus = "FAILED"
)

// IsTerminal reports whether no further transitions are allowed from s.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusSettled || s == StatusFailed
}

// IsValid reports whether s is one of the known statuses.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusProcessing, StatusSent, StatusSettled, StatusFailed:
		return true
	}
	return false
}

// Transaction is a ledger record created on payment submission. It is mutated
// only by the status simulation and never deleted for the process lifetime.
type Transaction struct {
	TransactionID          string            `json:"id"` // Primary Key (UUID)
	Status                 TransactionStatus `json:"status"`
	Amount                 decimal.Decimal   `json:"amount"`       // total payable, destination-currency units
	SourceAmount           decimal.Decimal   `json:"sourceAmount"` // original amount, source-currency units
	SourceCurrency         string            `json:"sourceCurrency"`
	DestinationCurrency    string            `json:"destinationCurrency"`
	SourceCurrencyObj      Currency          `json:"sourceCurrencyObj"`
	DestinationCurrencyObj Currency          `json:"destinationCurrencyObj"`
	Fees                   decimal.Decimal   `json:"fees"`
	FxRate                 decimal.Decimal   `json:"fxRate"`
	TotalPayable           decimal.Decimal   `json:"totalPayable"`
	CreatedAt              time.Time         `json:"createdAt"`
	UpdatedAt              time.Time         `json:"updatedAt"`
}

// Elapsed returns how long the transaction has existed as of now.
func (t *Transaction) Elapsed(now time.Time) time.Duration {
	return now.Sub(t.CreatedAt)
}

// Validate checks the structural invariants of a ledger record.
func (t *Transaction) Validate() error {
	if t.TransactionID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("unknown transaction status %q", t.Status)
	}
	if t.SourceAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("source amount must be positive")
	}
	if t.SourceCurrency == "" || t.DestinationCurrency == "" {
		return fmt.Errorf("source and destination currency codes are required")
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return fmt.Errorf("updatedAt must not precede createdAt")
	}
	return nil
}
