package config

import (
	"fmt"

	pkgconfig "github.com/momomonster549/ecom-macsorchids/pkg/config"
)

// Config holds all configuration for the storefront.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Redis
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Snapshot TTLs in hours. Carts and wishlists keep a week; checkout
	// sessions expire after an hour.
	CartTTLHours     int `env:"CART_TTL_HOURS" envDefault:"168"`
	WishlistTTLHours int `env:"WISHLIST_TTL_HOURS" envDefault:"168"`
	CheckoutTTLHours int `env:"CHECKOUT_TTL_HOURS" envDefault:"1"`

	// Kafka
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	// Simulated catalog latency in milliseconds. Zero disables it.
	CatalogLatencyMS int `env:"CATALOG_LATENCY_MS" envDefault:"300"`

	// Tracing
	TracingEnabled  bool    `env:"TRACING_ENABLED" envDefault:"false"`
	TracingEndpoint string  `env:"TRACING_ENDPOINT" envDefault:"localhost:4318"`
	TracingSample   float64 `env:"TRACING_SAMPLE_RATIO" envDefault:"1.0"`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.CartTTLHours < 1 || c.WishlistTTLHours < 1 || c.CheckoutTTLHours < 1 {
		return fmt.Errorf("snapshot TTLs must be at least one hour")
	}
	if c.CatalogLatencyMS < 0 {
		return fmt.Errorf("catalog latency must not be negative")
	}
	return nil
}
