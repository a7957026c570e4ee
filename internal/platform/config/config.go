package config

import (
	"os"
	"strings"
	"time"
)

// RedisConfig tunes the document-store client.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Config captures everything the server needs from its environment.
type Config struct {
	Addr        string
	MetricsAddr string

	// StoreBackend selects the order repository: memory, redis or postgres.
	StoreBackend string
	Redis        RedisConfig
	PostgresDSN  string

	// KafkaBrokers empty disables the bus; events then go to the in-process
	// sink, which suits local development.
	KafkaBrokers []string
	KafkaTopic   string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	cfg := Config{
		Addr:         envOr("COFFEESHOP_ADDR", ":8080"),
		MetricsAddr:  envOr("COFFEESHOP_METRICS_ADDR", ":9091"),
		StoreBackend: envOr("COFFEESHOP_STORE", "memory"),
		PostgresDSN:  os.Getenv("COFFEESHOP_POSTGRES_DSN"),
		KafkaTopic:   envOr("COFFEESHOP_EVENT_TOPIC", "coffeeshop.order.events"),
		Redis: RedisConfig{
			URL:          os.Getenv("COFFEESHOP_REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
	}

	if brokers := os.Getenv("COFFEESHOP_KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
