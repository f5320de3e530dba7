package repositories

import (
	"context"

	"github.com/SscSPs/fx_payments_app/internal/core/domain"
)

// TransactionReader defines read operations for ledger records.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its id.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions in creation order.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger records.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction keyed by its id.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction applies fn to the stored record under per-id
	// exclusivity, so the read-decide-write cycle is atomic with respect to
	// other updates of the same transaction. fn reports whether the mutated
	// record must be written back. The resulting record is returned either way.
	UpdateTransaction(ctx context.Context, transactionID string, fn func(txn *domain.Transaction) (bool, error)) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
