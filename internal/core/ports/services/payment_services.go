package services

import (
	"context"

	"github.com/SscSPs/fx_payments_app/internal/core/domain"
)

// PaymentSubmitterSvc defines payment submission into the ledger.
type PaymentSubmitterSvc interface {
	// SubmitPayment creates a PROCESSING transaction from an accepted quote's
	// economic fields and stores it in the ledger.
	SubmitPayment(ctx context.Context, req domain.PaymentRequest) (*domain.Transaction, error)
}

// PaymentStatusSvc defines status queries, which also advance the simulation.
type PaymentStatusSvc interface {
	// GetTransactionStatus returns the transaction after recomputing its
	// simulated status from elapsed time.
	GetTransactionStatus(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves every ledger record in creation order.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// PaymentSvcFacade combines all payment-related service interfaces.
type PaymentSvcFacade interface {
	PaymentSubmitterSvc
	PaymentStatusSvc
}
