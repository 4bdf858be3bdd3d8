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
	StoreFirestore = "firestore"
	StoreMemory    = "memory"
)

type Config struct {
	ServerPort  string
	Environment string
	BodyLimit   string

	FirebaseProject            string
	FirebaseServiceAccountJSON string
	FirebaseServiceAccountPath string
	StoreDriver                string

	FrontendURL        string
	ExposeErrorDetails bool

	StripeSecretKey string
	ExchangeRateURL string
	FallbackUSDRate float64

	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	RateLimitRequests int
	RateLimitWindow   time.Duration

	AMQPURL string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	env := getEnv("ENVIRONMENT", "development")

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", getEnv("PORT", "5000")),
		Environment: env,
		BodyLimit:   getEnv("BODY_LIMIT", "10M"),

		FirebaseProject:            getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseServiceAccountJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		FirebaseServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),
		StoreDriver:                strings.ToLower(getEnv("STORE_DRIVER", StoreFirestore)),

		FrontendURL:        getEnv("FRONTEND_URL", ""),
		ExposeErrorDetails: getEnvAsBool("EXPOSE_ERROR_DETAILS", env == "development"),

		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		ExchangeRateURL: getEnv("EXCHANGE_RATE_URL", "https://api.exchangerate-api.com/v4/latest/BDT"),
		FallbackUSDRate: getEnvAsFloat("FALLBACK_USD_RATE", 0.0091),

		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           int(getEnvAsInt64("REDIS_DB", 0)),
		RateLimitRequests: int(getEnvAsInt64("RATE_LIMIT_REQUESTS", 100)),
		RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),

		AMQPURL: getEnv("AMQP_URL", ""),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreFirestore:
		if c.FirebaseProject == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID is required when STORE_DRIVER=%s", StoreFirestore)
		}
	case StoreMemory:
		if c.IsProduction() {
			return fmt.Errorf("STORE_DRIVER=%s is not allowed in production", StoreMemory)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if c.RateLimitRequests <= 0 || c.RateLimitWindow <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d per %s", c.RateLimitRequests, c.RateLimitWindow)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil && f > 0 {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}
