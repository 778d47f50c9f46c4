package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

// Config holds all configuration for the billing service.
type Config struct {
	// Server
	Port string

	// Storage
	StorageDriver  string
	MemorySeedFile string
	AwsRegion      string
	DynamoEndpoint string
	AwsAccessKeyID string
	AwsSecretKey   string

	// Billing
	PlatformFeePercent float64

	// Identity
	JwtSecret    string
	AuthDisabled bool

	// Signature service
	SignatureServiceURL     string
	SignatureServiceAPIKey  string
	SignatureServiceMock    bool
	SignatureServiceTimeout time.Duration

	// Mercado Pago
	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	TestPayerEmail         string
	TestPayerUserID        string

	// Catalog cache
	CatalogCacheTTL     time.Duration
	CatalogCacheMaxCost int64
}

// Load reads configuration from the environment, after loading .env when
// present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
		return defaultValue
	}

	cfg := &Config{
		Port:                   getEnv("PORT", "8080"),
		StorageDriver:          strings.ToLower(getEnv("STORAGE_DRIVER", StorageDynamoDB)),
		MemorySeedFile:         getEnv("MEMORY_SEED_FILE", ""),
		AwsRegion:              getEnv("AWS_REGION", "us-east-1"),
		DynamoEndpoint:         getEnv("DYNAMODB_ENDPOINT", ""),
		AwsAccessKeyID:         getEnv("AWS_ACCESS_KEY_ID", ""),
		AwsSecretKey:           getEnv("AWS_SECRET_ACCESS_KEY", ""),
		JwtSecret:              getEnv("JWT_SECRET", ""),
		AuthDisabled:           isTruthy(getEnv("AUTH_DISABLED", "")),
		SignatureServiceURL:    getEnv("SIGNATURE_SERVICE_URL", ""),
		SignatureServiceAPIKey: getEnv("SIGNATURE_SERVICE_API_KEY", ""),
		SignatureServiceMock:   isTruthy(getEnv("SIGNATURE_SERVICE_MOCK", "")),
		MercadoPagoAccessToken: getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
		PaymentGatewayMock:     isTruthy(getEnv("PAYMENT_GATEWAY_MOCK", "")) || isTruthy(getEnv("MERCADOPAGO_MOCK", "")),
		TestPayerEmail:         getEnv("MERCADOPAGO_TEST_PAYER_EMAIL", ""),
		TestPayerUserID:        getEnv("MERCADOPAGO_TEST_PAYER_USER_ID", ""),
	}

	switch cfg.StorageDriver {
	case StorageDynamoDB, StorageMemory:
	default:
		return nil, fmt.Errorf("invalid STORAGE_DRIVER: %q (want %s or %s)", cfg.StorageDriver, StorageDynamoDB, StorageMemory)
	}

	var err error
	cfg.PlatformFeePercent, err = strconv.ParseFloat(getEnv("PLATFORM_FEE_PERCENT", "5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PLATFORM_FEE_PERCENT: %w", err)
	}
	if cfg.PlatformFeePercent < 0 || cfg.PlatformFeePercent > 100 {
		return nil, fmt.Errorf("invalid PLATFORM_FEE_PERCENT: %v out of range", cfg.PlatformFeePercent)
	}

	cfg.SignatureServiceTimeout, err = time.ParseDuration(getEnv("SIGNATURE_SERVICE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SIGNATURE_SERVICE_TIMEOUT: %w", err)
	}
	cfg.CatalogCacheTTL, err = time.ParseDuration(getEnv("CATALOG_CACHE_TTL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_CACHE_TTL: %w", err)
	}
	cfg.CatalogCacheMaxCost, err = strconv.ParseInt(getEnv("CATALOG_CACHE_MAX_COST", "10000"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_CACHE_MAX_COST: %w", err)
	}

	if !cfg.AuthDisabled && cfg.JwtSecret == "" {
		return nil, fmt.Errorf("missing required environment variable: JWT_SECRET")
	}
	return cfg, nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
