package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Simulation knobs
	SimulatedDelay      time.Duration   // per-call latency of the quote/status engines
	FeePercentage       decimal.Decimal // flat fee fraction, charged in source-currency units
	QuoteExpiryDuration time.Duration   // advisory quote lifetime
	StatusSentAfter     time.Duration   // PROCESSING -> SENT boundary
	StatusSettleAfter   time.Duration   // SENT -> terminal boundary
	SettleProbability   float64         // chance the terminal draw settles rather than fails
	RandomSeed          uint64          // 0 seeds from entropy

	RateLimit string // ulule/limiter formatted rate, e.g. "120-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SIMULATED_DELAY", "1s")
	viper.SetDefault("FEE_PERCENTAGE", "0.005")
	viper.SetDefault("QUOTE_EXPIRY_DURATION", "30s")
	viper.SetDefault("STATUS_SENT_AFTER", "10s")
	viper.SetDefault("STATUS_SETTLE_AFTER", "25s")
	viper.SetDefault("SETTLE_PROBABILITY", 0.9)
	viper.SetDefault("RANDOM_SEED", 0)
	viper.SetDefault("RATE_LIMIT", "120-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.SimulatedDelay = parseDurationOr("SIMULATED_DELAY", time.Second)
	cfg.QuoteExpiryDuration = parseDurationOr("QUOTE_EXPIRY_DURATION", 30*time.Second)
	cfg.StatusSentAfter = parseDurationOr("STATUS_SENT_AFTER", 10*time.Second)
	cfg.StatusSettleAfter = parseDurationOr("STATUS_SETTLE_AFTER", 25*time.Second)
	if cfg.StatusSettleAfter <= cfg.StatusSentAfter {
		log.Printf("Warning: STATUS_SETTLE_AFTER (%s) must exceed STATUS_SENT_AFTER (%s). Using defaults.\n",
			cfg.StatusSettleAfter, cfg.StatusSentAfter)
		cfg.StatusSentAfter = 10 * time.Second
		cfg.StatusSettleAfter = 25 * time.Second
	}

	feeStr := viper.GetString("FEE_PERCENTAGE")
	fee, err := decimal.NewFromString(feeStr)
	if err != nil || fee.IsNegative() {
		fee = decimal.RequireFromString("0.005")
		log.Printf("Warning: Invalid value for FEE_PERCENTAGE ('%s'). Defaulting to %s.\n", feeStr, fee)
	}
	cfg.FeePercentage = fee

	cfg.SettleProbability = viper.GetFloat64("SETTLE_PROBABILITY")
	if cfg.SettleProbability < 0 || cfg.SettleProbability > 1 {
		log.Printf("Warning: SETTLE_PROBABILITY (%v) must be within [0,1]. Defaulting to 0.9.\n", cfg.SettleProbability)
		cfg.SettleProbability = 0.9
	}

	cfg.RandomSeed = viper.GetUint64("RANDOM_SEED")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "120-M"
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
