package services

import (
	portsrepo "github.com/SscSPs/fx_payments_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_payments_app/internal/core/ports/services"
	"github.com/SscSPs/fx_payments_app/internal/platform/config"
	"github.com/SscSPs/fx_payments_app/internal/platform/random"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, src random.Source) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Quote = NewQuoteService(repos.CurrencyRepo, src, cfg)
	container.Payment = NewPaymentService(repos.TransactionRepo, src, cfg)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.QuoteSvcFacade   = (*QuoteService)(nil)
	_ portssvc.PaymentSvcFacade = (*PaymentService)(nil)
)
