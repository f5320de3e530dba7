package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fx_payments_app/internal/apperrors"
	"github.com/SscSPs/fx_payments_app/internal/core/domain"
	"github.com/SscSPs/fx_payments_app/internal/core/services"
	"github.com/SscSPs/fx_payments_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindRateRangeByCode(ctx context.Context, currencyCode string) (*domain.RateRange, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateRange), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// fixedSource always returns the same variate, pinning sampled rates.
type fixedSource struct {
	v float64
}

func (s fixedSource) Float64() float64 { return s.v }

// --- Test Suite ---
type QuoteServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo *MockCurrencyRepository
	now              time.Time
}

func (suite *QuoteServiceTestSuite) SetupTest() {
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *QuoteServiceTestSuite) newService(variate float64) *services.QuoteService {
	cfg := &config.Config{
		FeePercentage:       decimal.RequireFromString("0.005"),
		QuoteExpiryDuration: 30 * time.Second,
		SimulatedDelay:      0,
	}
	return services.NewQuoteService(suite.mockCurrencyRepo, fixedSource{v: variate}, cfg,
		services.WithQuoteClock(func() time.Time { return suite.now }))
}

func (suite *QuoteServiceTestSuite) mockCurrency(code, symbol string, id int, min, max string) {
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, code).
		Return(&domain.Currency{ID: id, CurrencyCode: code, Symbol: symbol, FxRate: decimal.RequireFromString(min)}, nil)
	suite.mockCurrencyRepo.On("FindRateRangeByCode", mock.Anything, code).
		Return(&domain.RateRange{CurrencyCode: code, Min: decimal.RequireFromString(min), Max: decimal.RequireFromString(max)}, nil)
}

// --- Test Cases ---

func (suite *QuoteServiceTestSuite) TestGetQuote_IdentityPairHasUnitRate() {
	ctx := context.Background()
	suite.mockCurrency("USD", "$", 1, "1.00", "1.00")
	svc := suite.newService(0.37)

	quote, err := svc.GetQuote(ctx, "USD", "USD", decimal.NewFromInt(250))

	suite.Require().NoError(err)
	suite.True(quote.FxRate.Equal(decimal.NewFromInt(1)), "same-currency pair must quote fxRate == 1, got %s", quote.FxRate)
}

func (suite *QuoteServiceTestSuite) TestGetQuote_ConcreteScenario() {
	// USD pegged at 1.00, EUR sampled exactly 1.00 (variate 0.5 on [0.85, 1.15])
	ctx := context.Background()
	suite.mockCurrency("USD", "$", 1, "1.00", "1.00")
	suite.mockCurrency("EUR", "€", 2, "0.85", "1.15")
	svc := suite.newService(0.5)

	quote, err := svc.GetQuote(ctx, "USD", "EUR", decimal.NewFromInt(1000))

	suite.Require().NoError(err)
	suite.True(quote.FxRate.Equal(decimal.NewFromInt(1)), "fxRate: %s", quote.FxRate)
	suite.True(quote.Fees.Equal(decimal.NewFromInt(5)), "fees: %s", quote.Fees)
	suite.True(quote.TotalPayable.Equal(decimal.NewFromInt(1005)), "totalPayable: %s", quote.TotalPayable)
	suite.Equal("USD", quote.SourceCurrency)
	suite.Equal("EUR", quote.DestinationCurrency)
	suite.True(quote.SourceCurrencyObj.FxRate.Equal(decimal.NewFromInt(1)))
	suite.True(quote.DestinationCurrencyObj.FxRate.Equal(decimal.NewFromInt(1)))
}

func (suite *QuoteServiceTestSuite) TestGetQuote_FeeIsExactHalfPercent() {
	ctx := context.Background()
	suite.mockCurrency("USD", "$", 1, "1.00", "1.00")
	svc := suite.newService(0.1)
	feeRate := decimal.RequireFromString("0.005")

	for _, raw := range []string{"0.01", "1", "123.45", "99999.99"} {
		amount := decimal.RequireFromString(raw)
		quote, err := svc.GetQuote(ctx, "USD", "USD", amount)
		suite.Require().NoError(err)
		suite.True(quote.Fees.Equal(amount.Mul(feeRate)), "amount %s: fees %s", raw, quote.Fees)
	}
}

func (suite *QuoteServiceTestSuite) TestGetQuote_TotalPayableComposition() {
	ctx := context.Background()
	suite.mockCurrency("USD", "$", 1, "1.00", "1.00")
	suite.mockCurrency("JPY", "¥", 4, "140.00", "160.00")
	svc := suite.newService(0.25)

	amount := decimal.RequireFromString("320.50")
	quote, err := svc.GetQuote(ctx, "USD", "JPY", amount)

	suite.Require().NoError(err)
	expected := amount.Add(quote.Fees).Mul(quote.FxRate)
	suite.True(quote.TotalPayable.Equal(expected), "totalPayable %s != (amount+fees)*fxRate %s", quote.TotalPayable, expected)
}

func (suite *QuoteServiceTestSuite) TestGetQuote_PeggedRateIsConstant() {
	ctx := context.Background()
	suite.mockCurrency("USD", "$", 1, "1.00", "1.00")

	for _, variate := range []float64{0.0, 0.33, 0.99} {
		svc := suite.newService(variate)
		quote, err := svc.GetQuote(ctx, "USD", "USD", decimal.NewFromInt(10))
		suite.Require().NoError(err)
		suite.True(quote.SourceCurrencyObj.FxRate.Equal(decimal.NewFromInt(1)),
			"pegged sampling must ignore variate %v", variate)
	}
}

func (suite *QuoteServiceTestSuite) TestGetQuote_SampledRateStaysInRange() {
	ctx := context.Background()
	suite.mockCurrency("USD", "$", 1, "1.00", "1.00")
	suite.mockCurrency("GBP", "£", 3, "0.75", "0.95")

	for _, variate := range []float64{0.0, 0.5, 0.999} {
		svc := suite.newService(variate)
		quote, err := svc.GetQuote(ctx, "USD", "GBP", decimal.NewFromInt(10))
		suite.Require().NoError(err)
		rate := quote.DestinationCurrencyObj.FxRate
		suite.True(rate.GreaterThanOrEqual(decimal.RequireFromString("0.75")), "rate %s below min", rate)
		suite.True(rate.LessThanOrEqual(decimal.RequireFromString("0.95")), "rate %s above max", rate)
		suite.True(rate.Equal(rate.Round(2)), "rate %s must carry at most 2 decimal places", rate)
	}
}

func (suite *QuoteServiceTestSuite) TestGetQuote_ExpiryIsThirtySeconds() {
	ctx := context.Background()
	suite.mockCurrency("USD", "$", 1, "1.00", "1.00")
	svc := suite.newService(0.5)

	quote, err := svc.GetQuote(ctx, "USD", "USD", decimal.NewFromInt(100))

	suite.Require().NoError(err)
	suite.Equal(suite.now.Add(30*time.Second), quote.QuoteExpiryTime)
}

func (suite *QuoteServiceTestSuite) TestGetQuote_UnknownCurrency() {
	ctx := context.Background()
	suite.mockCurrency("USD", "$", 1, "1.00", "1.00")
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "ZZZ").
		Return(nil, apperrors.ErrCurrencyNotFound)
	svc := suite.newService(0.5)

	quote, err := svc.GetQuote(ctx, "USD", "ZZZ", decimal.NewFromInt(100))

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrCurrencyNotFound)
}

func TestQuoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteServiceTestSuite))
}
