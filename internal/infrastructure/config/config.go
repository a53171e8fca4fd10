package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort            = 8080
	defaultAPIVersion      = "2025-01"
	defaultRemoteTimeout   = 30 * time.Second
	defaultUploadStep      = 60 * time.Second
	defaultUploadFanOut    = 3
	defaultCacheTable      = "quote_snapshots"
	defaultCacheTTL        = 10 * time.Minute
	defaultNotificationTop = "quote-notifications"
)

// Config is read once at process start. Nothing reloads it afterwards.
type Config struct {
	Port        int
	Commerce    CommerceConfig
	AdminEmails []string
	Upload      UploadConfig
	Kafka       KafkaConfig
	QuoteCache  QuoteCacheConfig
	DynamoDB    DynamoDBConfig
}

type CommerceConfig struct {
	StoreDomain string
	AccessToken string
	APIVersion  string
	// Endpoint overrides the URL derived from StoreDomain and APIVersion.
	Endpoint string
	Timeout  time.Duration
}

type UploadConfig struct {
	MaxConcurrency int
	StepTimeout    time.Duration
	RemoteRPS      float64
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func (k KafkaConfig) Enabled() bool { return len(k.Brokers) > 0 }

type QuoteCacheConfig struct {
	Enabled bool
	Table   string
	TTL     time.Duration
}

// DynamoDBConfig mirrors the local-friendly AWS settings.
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

// Load reads the environment. Malformed numbers fall back to their defaults
// and are logged; a missing remote token is not an error here, operations
// report it as a configuration error when they run.
func Load() Config {
	return Config{
		Port: getenvInt("PORT", defaultPort),
		Commerce: CommerceConfig{
			StoreDomain: strings.TrimSpace(os.Getenv("SHOPIFY_STORE_DOMAIN")),
			AccessToken: strings.TrimSpace(os.Getenv("SHOPIFY_ADMIN_ACCESS_TOKEN")),
			APIVersion:  getenvDefault("SHOPIFY_API_VERSION", defaultAPIVersion),
			Endpoint:    strings.TrimSpace(os.Getenv("SHOPIFY_GRAPHQL_ENDPOINT")),
			Timeout:     getenvMillis("REMOTE_TIMEOUT_MS", defaultRemoteTimeout),
		},
		AdminEmails: splitList(os.Getenv("ADMIN_EMAILS")),
		Upload: UploadConfig{
			MaxConcurrency: getenvInt("UPLOAD_MAX_CONCURRENCY", defaultUploadFanOut),
			StepTimeout:    getenvMillis("UPLOAD_STEP_TIMEOUT_MS", defaultUploadStep),
			RemoteRPS:      getenvFloat("REMOTE_RPS", 0),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   getenvDefault("KAFKA_NOTIFICATION_TOPIC", defaultNotificationTop),
		},
		QuoteCache: QuoteCacheConfig{
			Enabled: isTruthy(os.Getenv("QUOTE_CACHE_ENABLED")),
			Table:   getenvDefault("QUOTE_CACHE_TABLE", defaultCacheTable),
			TTL:     time.Duration(getenvInt("QUOTE_CACHE_TTL_SECONDS", int(defaultCacheTTL/time.Second))) * time.Second,
		},
		DynamoDB: DynamoDBConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
		},
	}
}

// GraphQLEndpoint returns "" when neither an override nor a store domain is set.
func (c CommerceConfig) GraphQLEndpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	if c.StoreDomain == "" {
		return ""
	}
	domain := strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(c.StoreDomain, "https://"), "http://"), "/")
	return fmt.Sprintf("https://%s/admin/api/%s/graphql.json", domain, c.APIVersion)
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		log.Printf("[config] invalid %s=%q, using %v", key, v, def)
		return def
	}
	return f
}

func getenvMillis(key string, def time.Duration) time.Duration {
	ms := getenvInt(key, int(def/time.Millisecond))
	return time.Duration(ms) * time.Millisecond
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
