package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
// It is read-only after startup; everything downstream receives it by value.
type Config struct {
	HTTPAddr        string
	StoreDomain     string
	AccessToken     string
	TestCustomerID  string
	UpstreamTimeout time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
	LogFormat       string
	LogPII          bool
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":4000"),
		StoreDomain:     envOrDefault("SHOPIFY_STORE_DOMAIN", ""),
		AccessToken:     envOrDefault("SHOPIFY_ACCESS_TOKEN", ""),
		TestCustomerID:  envOrDefault("SHOPIFY_TEST_CUSTOMER_ID", ""),
		UpstreamTimeout: envDuration("SHOPIFY_TIMEOUT_SECONDS", 15*time.Second),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "console"),
		LogPII:          envBool("LOG_PII", false),
	}
}

// ShopifyConfigured reports whether both upstream credentials are present.
func (c Config) ShopifyConfigured() bool {
	return c.StoreDomain != "" && c.AccessToken != ""
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
