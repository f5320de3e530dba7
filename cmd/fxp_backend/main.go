package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/fx_payments_app/internal/adapters/database/memory"
	"github.com/SscSPs/fx_payments_app/internal/core/services"
	"github.com/SscSPs/fx_payments_app/internal/handlers"
	"github.com/SscSPs/fx_payments_app/internal/middleware"
	"github.com/SscSPs/fx_payments_app/internal/platform/config"
	"github.com/SscSPs/fx_payments_app/internal/platform/random"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title FX Payments Simulator API
// @version 1.0
// @description Simulated foreign-exchange payment flow: quotes, payment submission and status polling.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// All state is in-memory and lives for the process lifetime.
	repos := memory.NewRepositoryProvider()
	src := random.New(cfg.RandomSeed)
	serviceContainer := services.NewServiceContainer(cfg, repos, src)

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	limiterInstance := limiter.New(memorystore.NewStore(), rate)

	r := gin.New()

	// Global middleware (logging, recovery, cors, rate limit)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.Default(),
		middleware.RateLimit(limiterInstance),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
