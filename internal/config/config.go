package config

import (
	"os"
	"strings"
	"time"

	"github.com/tair/storefront/pkg/database"
)

// Catalog sources
const (
	CatalogSourceMock     = "mock"
	CatalogSourceLive     = "live"
	CatalogSourcePostgres = "postgres"
)

// Config holds the storefront service configuration
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string
	HTTPPort    string

	Brand     string
	BrandsDir string

	// APIBase empty means mock mode
	APIBase       string
	CatalogSource string
	Database      database.Config

	RedisAddr     string
	RedisPassword string
	StateTTL      time.Duration
	CacheTTL      time.Duration

	KafkaBrokers []string
	KafkaGroupID string

	JWTSecret      string
	ShellBridgeURL string
	AllowedOrigins []string
	JaegerEndpoint string
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load reads configuration from the environment
func Load() *Config {
	cfg := &Config{
		ServiceName: getEnv("OTEL_SERVICE_NAME", "storefront"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),

		Brand:     getEnv("BRAND", "wecare"),
		BrandsDir: getEnv("BRANDS_DIR", ""),

		APIBase: strings.TrimRight(getEnv("API_BASE", ""), "/"),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "storefrontdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		StateTTL:      getDuration("STATE_TTL", 30*24*time.Hour),
		CacheTTL:      getDuration("CACHE_TTL", 5*time.Minute),

		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaGroupID: getEnv("KAFKA_GROUP_ID", "storefront"),

		JWTSecret:      getEnv("JWT_SECRET", "storefront-dev-secret"),
		ShellBridgeURL: strings.TrimRight(getEnv("SHELL_BRIDGE_URL", ""), "/"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		JaegerEndpoint: getEnv("JAEGER_ENDPOINT", ""),
	}

	cfg.CatalogSource = resolveCatalogSource(getEnv("CATALOG_SOURCE", ""), cfg.APIBase)
	return cfg
}

// resolveCatalogSource picks the explicit source, otherwise live when an API base is set
func resolveCatalogSource(explicit, apiBase string) string {
	switch explicit {
	case CatalogSourceMock, CatalogSourceLive, CatalogSourcePostgres:
		return explicit
	}
	if apiBase != "" {
		return CatalogSourceLive
	}
	return CatalogSourceMock
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
