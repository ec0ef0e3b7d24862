package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr         string
	DBConnString     string
	ShutdownTimeout  time.Duration
	AppEnv           string
	LogLevel         string
	CORSAllowOrigins []string

	Shopify     Shopify
	BigCommerce BigCommerce
	Demo        Demo
}

// Shopify configures the GraphQL storefront backend. Leaving either
// StoreDomain or AccessToken empty selects demo mode.
type Shopify struct {
	StoreDomain string
	AccessToken string
	APIVersion  string
	CacheTTL    time.Duration
}

type BigCommerce struct {
	APIURL      string
	StoreHash   string
	AccessToken string
}

type Demo struct {
	CatalogFile            string
	LegacyDuplicatePricing bool
	LegacyUpdateShell      bool
	LegacyStoreEmptyAdd    bool
}

// FromEnv builds Config with defaults, overridden by environment variables.
// A .env file in the working directory is loaded first when present;
// variables already set in the environment take precedence.
func FromEnv() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:         envOrDefault("HTTP_ADDR", ":8080"),
		DBConnString:     envOrDefault("DB_DSN", ""),
		ShutdownTimeout:  envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		AppEnv:           envOrDefault("APP_ENV", "production"),
		LogLevel:         envOrDefault("LOG_LEVEL", "info"),
		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{"*"}),
		Shopify: Shopify{
			StoreDomain: envOrDefault("SHOPIFY_STORE_DOMAIN", ""),
			AccessToken: envOrDefault("SHOPIFY_STOREFRONT_ACCESS_TOKEN", ""),
			APIVersion:  envOrDefault("SHOPIFY_API_VERSION", "2024-01"),
			CacheTTL:    envDuration("SHOPIFY_CACHE_TTL_SECONDS", 5*time.Minute),
		},
		BigCommerce: BigCommerce{
			APIURL:      envOrDefault("BIGCOMMERCE_API_URL", "https://api.bigcommerce.com"),
			StoreHash:   envOrDefault("BIGCOMMERCE_STORE_HASH", ""),
			AccessToken: envOrDefault("BIGCOMMERCE_ACCESS_TOKEN", ""),
		},
		Demo: Demo{
			CatalogFile:            envOrDefault("DEMO_CATALOG_FILE", ""),
			LegacyDuplicatePricing: envBool("DEMO_LEGACY_DUPLICATE_PRICING", true),
			LegacyUpdateShell:      envBool("DEMO_LEGACY_UPDATE_SHELL", true),
			LegacyStoreEmptyAdd:    envBool("DEMO_LEGACY_STORE_EMPTY_ADD", true),
		},
	}
}

// Development reports whether the process runs with APP_ENV=development.
// Development disables the backend response cache and switches to console logs.
func (c Config) Development() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
