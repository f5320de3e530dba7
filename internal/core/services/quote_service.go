package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/fx_payments_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_payments_app/internal/core/ports/repositories"
	"github.com/SscSPs/fx_payments_app/internal/platform/config"
	"github.com/SscSPs/fx_payments_app/internal/platform/random"
	"github.com/shopspring/decimal"
)

// QuoteService prices conversions between two currencies of the reference set
// with freshly sampled rates, a flat percentage fee and an advisory expiry.
type QuoteService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
	rand         random.Source

	feePercentage  decimal.Decimal
	quoteExpiry    time.Duration
	simulatedDelay time.Duration
	now            func() time.Time
}

// QuoteServiceOption customises a QuoteService at construction.
type QuoteServiceOption func(*QuoteService)

// WithQuoteClock overrides the wall clock, used by tests to pin expiry math.
func WithQuoteClock(now func() time.Time) QuoteServiceOption {
	return func(s *QuoteService) {
		s.now = now
	}
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(currencyRepo portsrepo.CurrencyRepositoryFacade, src random.Source, cfg *config.Config, opts ...QuoteServiceOption) *QuoteService {
	s := &QuoteService{
		currencyRepo:   currencyRepo,
		rand:           src,
		feePercentage:  cfg.FeePercentage,
		quoteExpiry:    cfg.QuoteExpiryDuration,
		simulatedDelay: cfg.SimulatedDelay,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetQuote computes fx rate, fee and total payable for a source/destination/
// amount triple. Each quote samples fresh independent rates for both
// currencies, so the same pair can price differently on every call. Amount
// positivity is the caller's responsibility and is not re-validated here.
func (s *QuoteService) GetQuote(ctx context.Context, sourceCode, destCode string, amount decimal.Decimal) (*domain.Quote, error) {
	if err := simulateLatency(ctx, s.simulatedDelay); err != nil {
		return nil, err
	}

	sourceCode = strings.ToUpper(sourceCode)
	destCode = strings.ToUpper(destCode)

	source, err := s.currencyRepo.FindCurrencyByCode(ctx, sourceCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source currency: %w", err)
	}
	destination, err := s.currencyRepo.FindCurrencyByCode(ctx, destCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination currency: %w", err)
	}

	sourceRange, err := s.currencyRepo.FindRateRangeByCode(ctx, sourceCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source rate range: %w", err)
	}
	destinationRange, err := s.currencyRepo.FindRateRangeByCode(ctx, destCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination rate range: %w", err)
	}

	sourceRate := s.sampleRate(*sourceRange)
	destinationRate := s.sampleRate(*destinationRange)

	// Snapshot the sampled rates onto the currency objects so later fee/rate
	// math uses the values captured at quote time.
	sourceSnapshot := *source
	sourceSnapshot.FxRate = sourceRate
	destinationSnapshot := *destination
	destinationSnapshot.FxRate = destinationRate

	fxRate := decimal.NewFromInt(1)
	if sourceCode != destCode {
		// destination units per source unit
		fxRate = destinationRate.Div(sourceRate)
	}

	fees := amount.Mul(s.feePercentage)
	totalInSource := amount.Add(fees)
	totalPayable := totalInSource.Mul(fxRate)

	return &domain.Quote{
		SourceCurrency:         sourceCode,
		DestinationCurrency:    destCode,
		SourceCurrencyObj:      sourceSnapshot,
		DestinationCurrencyObj: destinationSnapshot,
		Amount:                 amount,
		FxRate:                 fxRate,
		Fees:                   fees,
		TotalPayable:           totalPayable,
		QuoteExpiryTime:        s.now().Add(s.quoteExpiry),
	}, nil
}

// sampleRate draws a rate uniformly within rng, rounded to 2 decimal places.
// A pegged range yields its constant without consuming randomness.
func (s *QuoteService) sampleRate(rng domain.RateRange) decimal.Decimal {
	if rng.Pegged() {
		return rng.Min
	}
	span := rng.Max.Sub(rng.Min)
	offset := span.Mul(decimal.NewFromFloat(s.rand.Float64()))
	return rng.Min.Add(offset).Round(2)
}
