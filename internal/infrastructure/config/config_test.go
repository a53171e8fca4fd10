package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "SHOPIFY_STORE_DOMAIN", "SHOPIFY_ADMIN_ACCESS_TOKEN", "SHOPIFY_API_VERSION", "SHOPIFY_GRAPHQL_ENDPOINT",
		"REMOTE_TIMEOUT_MS", "ADMIN_EMAILS", "UPLOAD_MAX_CONCURRENCY", "UPLOAD_STEP_TIMEOUT_MS", "REMOTE_RPS",
		"KAFKA_BROKERS", "KAFKA_NOTIFICATION_TOPIC", "QUOTE_CACHE_ENABLED", "QUOTE_CACHE_TABLE", "QUOTE_CACHE_TTL_SECONDS",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "", cfg.Commerce.GraphQLEndpoint())
	assert.Equal(t, 30*time.Second, cfg.Commerce.Timeout)
	assert.Equal(t, 3, cfg.Upload.MaxConcurrency)
	assert.Equal(t, 60*time.Second, cfg.Upload.StepTimeout)
	assert.Zero(t, cfg.Upload.RemoteRPS)
	assert.False(t, cfg.Kafka.Enabled())
	assert.False(t, cfg.QuoteCache.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.QuoteCache.TTL)
	assert.Empty(t, cfg.AdminEmails)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SHOPIFY_STORE_DOMAIN", "https://print-shop.myshopify.com/")
	t.Setenv("SHOPIFY_ADMIN_ACCESS_TOKEN", "shpat_x")
	t.Setenv("SHOPIFY_API_VERSION", "2024-10")
	t.Setenv("SHOPIFY_GRAPHQL_ENDPOINT", "")
	t.Setenv("REMOTE_TIMEOUT_MS", "1500")
	t.Setenv("ADMIN_EMAILS", " staff@print.io, ,Boss@Print.io ")
	t.Setenv("UPLOAD_MAX_CONCURRENCY", "not-a-number")
	t.Setenv("REMOTE_RPS", "2.5")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("QUOTE_CACHE_ENABLED", "Yes")
	t.Setenv("QUOTE_CACHE_TTL_SECONDS", "30")

	cfg := Load()
	require.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "https://print-shop.myshopify.com/admin/api/2024-10/graphql.json", cfg.Commerce.GraphQLEndpoint())
	assert.Equal(t, 1500*time.Millisecond, cfg.Commerce.Timeout)
	assert.Equal(t, []string{"staff@print.io", "Boss@Print.io"}, cfg.AdminEmails)
	assert.Equal(t, 3, cfg.Upload.MaxConcurrency)
	assert.Equal(t, 2.5, cfg.Upload.RemoteRPS)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.True(t, cfg.QuoteCache.Enabled)
	assert.Equal(t, 30*time.Second, cfg.QuoteCache.TTL)
}

func TestCommerceConfig_EndpointOverride(t *testing.T) {
	c := CommerceConfig{StoreDomain: "shop.example.com", APIVersion: "2025-01", Endpoint: "http://127.0.0.1:9999/graphql"}
	assert.Equal(t, "http://127.0.0.1:9999/graphql", c.GraphQLEndpoint())
}
