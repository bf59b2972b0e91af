package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env"

	"github.com/spicehouse/restaurant-backend/internal/payment"
)

type Config struct {
	Address               string        `env:"RUN_ADDRESS" envDefault:"localhost:8080"`
	LogLevel              string        `env:"LOG_LEVEL" envDefault:"INFO"`
	Environment           string        `env:"APP_ENV" envDefault:"development"`
	DatabaseConnection    string        `env:"MONGO_URL" envDefault:"mongodb://localhost:27017"`
	DatabaseName          string        `env:"DB_NAME" envDefault:"restaurant"`
	RazorpayKeyID         string        `env:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret     string        `env:"RAZORPAY_KEY_SECRET"`
	RazorpayWebhookSecret string        `env:"RAZORPAY_WEBHOOK_SECRET"`
	JWTSecret             string        `env:"JWT_SECRET" envDefault:"dontexposethis"`
	JWTTTL                time.Duration `env:"JWT_TTL" envDefault:"24h"`
	AdminUsername         string        `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminEmail            string        `env:"ADMIN_EMAIL" envDefault:"admin@spicehouse.local"`
	AdminPassword         string        `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	ReconcileWorkers      int           `env:"RECONCILE_WORKERS" envDefault:"4"`
	ReconcileInterval     time.Duration `env:"RECONCILE_INTERVAL" envDefault:"1m"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("ENV JWT_SECRET must be set")
	}

	address := flag.String("a", cfg.Address, "{Host:port} for server")
	loglevel := flag.String("l", cfg.LogLevel, "Log level for server")
	environment := flag.String("e", cfg.Environment, "Deployment environment (development|production)")
	databaseConnection := flag.String("d", cfg.DatabaseConnection, "MongoDB connection string")
	databaseName := flag.String("n", cfg.DatabaseName, "Database name")
	reconcileWorkers := flag.Int("w", cfg.ReconcileWorkers, "Size of reconciliation worker pool")
	reconcileInterval := flag.Duration("i", cfg.ReconcileInterval, "Reconciliation sweep interval")
	jwtTTL := flag.Duration("t", cfg.JWTTTL, "TTL for JWT token(e.g. 24h; 30m )")

	flag.Parse()

	cfg.Address = *address
	cfg.LogLevel = *loglevel
	cfg.Environment = *environment
	cfg.DatabaseConnection = *databaseConnection
	cfg.DatabaseName = *databaseName
	cfg.ReconcileWorkers = *reconcileWorkers
	cfg.ReconcileInterval = *reconcileInterval
	cfg.JWTTTL = *jwtTTL

	return cfg, nil
}

// PaymentGatewayConfig re-reads the gateway secrets from the environment on
// every call, so rotated credentials are picked up without a restart.
func (c *Config) PaymentGatewayConfig() payment.GatewayConfig {
	return payment.GatewayConfig{
		KeyID:         envOr("RAZORPAY_KEY_ID", c.RazorpayKeyID),
		KeySecret:     envOr("RAZORPAY_KEY_SECRET", c.RazorpayKeySecret),
		WebhookSecret: envOr("RAZORPAY_WEBHOOK_SECRET", c.RazorpayWebhookSecret),
		Production:    c.Environment == "production",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
