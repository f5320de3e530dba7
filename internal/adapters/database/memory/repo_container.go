package memory

import (
	portsrepo "github.com/SscSPs/fx_payments_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the in-memory adapters into the repository
// provider the service layer consumes. Swapping in a persistent store only
// requires another provider; the services never see the difference.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:    NewCurrencyRepository(),
		TransactionRepo: NewTransactionRepository(),
	}
}
