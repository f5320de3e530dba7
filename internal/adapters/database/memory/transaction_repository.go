package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/fx_payments_app/internal/apperrors"
	"github.com/SscSPs/fx_payments_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_payments_app/internal/core/ports/repositories"
)

// TransactionRepository is the in-memory ledger. Records live for the process
// lifetime and are never deleted. Each record carries its own write lock so
// the status simulation's read-decide-write cycle is atomic per transaction
// without a global critical section across the ledger.
type TransactionRepository struct {
	mu           sync.RWMutex // guards the maps and the order slice
	transactions map[string]domain.Transaction
	locks        map[string]*sync.Mutex
	order        []string // ids in creation order
}

// NewTransactionRepository creates an empty in-memory ledger.
func NewTransactionRepository() portsrepo.TransactionRepositoryFacade {
	return &TransactionRepository{
		transactions: make(map[string]domain.Transaction),
		locks:        make(map[string]*sync.Mutex),
	}
}

// SaveTransaction persists a new transaction keyed by its id.
func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	if txn.TransactionID == "" {
		return fmt.Errorf("%w: transaction ID is required", apperrors.ErrValidation)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.transactions[txn.TransactionID]; exists {
		return fmt.Errorf("%w: transaction '%s' already stored", apperrors.ErrValidation, txn.TransactionID)
	}
	r.transactions[txn.TransactionID] = txn
	r.locks[txn.TransactionID] = &sync.Mutex{}
	r.order = append(r.order, txn.TransactionID)
	return nil
}

// FindTransactionByID retrieves a transaction by its id.
func (r *TransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	txn, ok := r.transactions[transactionID]
	if !ok {
		return nil, fmt.Errorf("transaction '%s': %w", transactionID, apperrors.ErrTransactionNotFound)
	}
	return &txn, nil
}

// ListTransactions retrieves all transactions in creation order.
func (r *TransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	txns := make([]domain.Transaction, 0, len(r.order))
	for _, id := range r.order {
		txns = append(txns, r.transactions[id])
	}
	return txns, nil
}

// UpdateTransaction applies fn to the stored record while holding that
// record's own lock, so concurrent updates of the same id serialize and fn's
// decision is made against the freshest stored state exactly once.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, transactionID string, fn func(txn *domain.Transaction) (bool, error)) (*domain.Transaction, error) {
	keyLock, err := r.lockFor(transactionID)
	if err != nil {
		return nil, err
	}
	keyLock.Lock()
	defer keyLock.Unlock()

	r.mu.RLock()
	txn := r.transactions[transactionID]
	r.mu.RUnlock()

	changed, err := fn(&txn)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction '%s': %w", transactionID, err)
	}
	if changed {
		r.mu.Lock()
		r.transactions[transactionID] = txn
		r.mu.Unlock()
	}
	return &txn, nil
}

func (r *TransactionRepository) lockFor(transactionID string) (*sync.Mutex, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keyLock, ok := r.locks[transactionID]
	if !ok {
		return nil, fmt.Errorf("transaction '%s': %w", transactionID, apperrors.ErrTransactionNotFound)
	}
	return keyLock, nil
}
