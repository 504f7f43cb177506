package config

import "time"

type Config struct {
	LogLevel string `flag:"log-level"`

	DatabaseURL string `flag:"database-url"`

	HTTPAddr    string `flag:"http-addr"`
	MetricsAddr string `flag:"metrics-addr"`

	JWTSecret string        `flag:"jwt-secret"`
	JWTExpiry time.Duration `flag:"jwt-expiry"`

	RedisURL string        `flag:"redis-url"`
	CacheTTL time.Duration `flag:"cache-ttl"`

	NATSURL  string `flag:"nats-url"`
	NATSInit bool   `flag:"nats-init"`
}
