package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	if cfg.HTTPAddr != ":4000" {
		t.Fatalf("expected default addr :4000, got %q", cfg.HTTPAddr)
	}
	if cfg.UpstreamTimeout != 15*time.Second {
		t.Fatalf("expected 15s upstream timeout, got %s", cfg.UpstreamTimeout)
	}
	if cfg.LogPII {
		t.Fatalf("expected PII logging disabled by default")
	}
	if cfg.ShopifyConfigured() {
		t.Fatalf("expected shopify unconfigured without env vars")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("SHOPIFY_STORE_DOMAIN", "demo.myshopify.com")
	t.Setenv("SHOPIFY_ACCESS_TOKEN", "shpat_test")
	t.Setenv("SHOPIFY_TEST_CUSTOMER_ID", "123")
	t.Setenv("SHOPIFY_TIMEOUT_SECONDS", "5")
	t.Setenv("LOG_PII", "true")

	cfg := FromEnv()

	if cfg.HTTPAddr != ":9999" {
		t.Fatalf("expected addr override, got %q", cfg.HTTPAddr)
	}
	if !cfg.ShopifyConfigured() {
		t.Fatalf("expected shopify configured")
	}
	if cfg.TestCustomerID != "123" {
		t.Fatalf("expected test customer id 123, got %q", cfg.TestCustomerID)
	}
	if cfg.UpstreamTimeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %s", cfg.UpstreamTimeout)
	}
	if !cfg.LogPII {
		t.Fatalf("expected PII logging enabled")
	}
}

func TestFromEnv_BadNumbersFallBack(t *testing.T) {
	t.Setenv("SHOPIFY_TIMEOUT_SECONDS", "soon")
	t.Setenv("LOG_PII", "oui")

	cfg := FromEnv()

	if cfg.UpstreamTimeout != 15*time.Second {
		t.Fatalf("expected default timeout on parse failure, got %s", cfg.UpstreamTimeout)
	}
	if cfg.LogPII {
		t.Fatalf("expected default PII gate on parse failure")
	}
}
