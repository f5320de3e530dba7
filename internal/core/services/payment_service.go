package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/fx_payments_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_payments_app/internal/core/ports/repositories"
	"github.com/SscSPs/fx_payments_app/internal/platform/config"
	"github.com/SscSPs/fx_payments_app/internal/platform/random"
	"github.com/google/uuid"
)

// PaymentService owns the transaction ledger writes: it creates records on
// submission and advances their simulated status on every status query.
type PaymentService struct {
	txnRepo portsrepo.TransactionRepositoryFacade
	rand    random.Source

	sentAfter         time.Duration
	settleAfter       time.Duration
	settleProbability float64
	simulatedDelay    time.Duration
	now               func() time.Time
}

// PaymentServiceOption customises a PaymentService at construction.
type PaymentServiceOption func(*PaymentService)

// WithPaymentClock overrides the wall clock, used by tests to step through
// the status bands without sleeping.
func WithPaymentClock(now func() time.Time) PaymentServiceOption {
	return func(s *PaymentService) {
		s.now = now
	}
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(txnRepo portsrepo.TransactionRepositoryFacade, src random.Source, cfg *config.Config, opts ...PaymentServiceOption) *PaymentService {
	s := &PaymentService{
		txnRepo:           txnRepo,
		rand:              src,
		sentAfter:         cfg.StatusSentAfter,
		settleAfter:       cfg.StatusSettleAfter,
		settleProbability: cfg.SettleProbability,
		simulatedDelay:    cfg.SimulatedDelay,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitPayment creates a PROCESSING transaction from an accepted quote's
// economic fields. Submission always succeeds for a well-formed request.
func (s *PaymentService) SubmitPayment(ctx context.Context, req domain.PaymentRequest) (*domain.Transaction, error) {
	if err := simulateLatency(ctx, s.simulatedDelay); err != nil {
		return nil, err
	}

	now := s.now()
	txn := domain.Transaction{
		TransactionID:          uuid.NewString(),
		Status:                 domain.StatusProcessing,
		Amount:                 req.TotalPayable,
		SourceAmount:           req.Amount,
		SourceCurrency:         req.SourceCurrency,
		DestinationCurrency:    req.DestinationCurrency,
		SourceCurrencyObj:      req.SourceCurrencyObj,
		DestinationCurrencyObj: req.DestinationCurrencyObj,
		Fees:                   req.Fees,
		FxRate:                 req.FxRate,
		TotalPayable:           req.TotalPayable,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to submit payment in service: %w", err)
	}
	return &txn, nil
}

// GetTransactionStatus returns the transaction after recomputing its status
// from elapsed time. The read-decide-write runs inside the repository's
// per-id exclusive section, so the terminal draw happens exactly once even
// under concurrent polling. The simulated latency is taken before the locked
// section.
func (s *PaymentService) GetTransactionStatus(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	if err := simulateLatency(ctx, s.simulatedDelay); err != nil {
		return nil, err
	}

	txn, err := s.txnRepo.UpdateTransaction(ctx, transactionID, func(txn *domain.Transaction) (bool, error) {
		next := s.nextStatus(txn)
		if next == txn.Status {
			return false, nil
		}
		txn.Status = next
		txn.UpdatedAt = s.now()
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction status in service: %w", err)
	}
	return txn, nil
}

// ListTransactions retrieves every ledger record in creation order.
func (s *PaymentService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// nextStatus recomputes the simulated status as a pure function of elapsed
// time plus the single stored terminal decision. Terminal statuses are
// sticky and never downgrade. Past the settle boundary any non-terminal
// status, including a PROCESSING record that was never observed while SENT,
// resolves through SENT into exactly one random settle-or-fail draw.
func (s *PaymentService) nextStatus(txn *domain.Transaction) domain.TransactionStatus {
	if txn.Status.IsTerminal() {
		return txn.Status
	}
	elapsed := txn.Elapsed(s.now())
	switch {
	case elapsed < s.sentAfter:
		return domain.StatusProcessing
	case elapsed < s.settleAfter:
		return domain.StatusSent
	default:
		if s.rand.Float64() < s.settleProbability {
			return domain.StatusSettled
		}
		return domain.StatusFailed
	}
}
