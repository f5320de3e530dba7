package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fx_payments_app/internal/apperrors"
	portssvc "github.com/SscSPs/fx_payments_app/internal/core/ports/services"
	"github.com/SscSPs/fx_payments_app/internal/dto"
	"github.com/SscSPs/fx_payments_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// quoteHandler handles HTTP requests related to quotes.
type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

func newQuoteHandler(qs portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{quoteService: qs}
}

// registerQuoteRoutes registers routes related to quotes.
func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := newQuoteHandler(quoteService)

	quotes := rg.Group("/quotes")
	{
		quotes.POST("", h.createQuote)
	}
}

// createQuote godoc
// @Summary Request a quote
// @Description Prices a conversion between two supported currencies with freshly sampled rates, a 0.5% fee and a 30s advisory expiry
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body dto.CreateQuoteRequest true "Quote parameters"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid input or amount"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to compute quote"
// @Router /quotes [post]
func (h *quoteHandler) createQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	// Amount validation is the transport's job; the quote engine assumes a
	// positive finite decimal.
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		logger.Warn("Invalid amount for createQuote", slog.String("amount", req.Amount))
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidAmount.Error() + ": amount must be a positive number"})
		return
	}

	logger = logger.With(
		slog.String("source_currency", req.SourceCurrency),
		slog.String("destination_currency", req.DestinationCurrency),
	)

	quote, err := h.quoteService.GetQuote(c.Request.Context(), req.SourceCurrency, req.DestinationCurrency, amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrCurrencyNotFound) {
			logger.Warn("Currency not found for quote")
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else {
			logger.Error("Failed to compute quote in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute quote"})
		}
		return
	}

	logger.Info("Quote computed successfully")
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// bindErrorMessage flattens gin's binding errors into a readable message.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return "Invalid request format: field '" + verrs[0].Field() + "' failed on '" + verrs[0].Tag() + "'"
	}
	return "Invalid request format: " + err.Error()
}
