package flags

import (
	"fmt"
	"slices"
	"time"

	"github.com/urfave/cli/v3"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

var validFeedVariants = []string{"full", "priority", "search"}

// TODO: extract custom EnumFlag
var LogLevel = &cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "The level of the logs",
	Value:   "info",
	Validator: func(value string) error {
		if !slices.Contains(validLogLevels, value) {
			return fmt.Errorf("invalid log level: %s, allowed values are: %s", value, validLogLevels)
		}
		return nil
	},
	Sources: cli.EnvVars("LOG_LEVEL"),
}

var DatabaseURL = &cli.StringFlag{
	Name:    "database-url",
	Aliases: []string{"d"},
	Usage:   "The postgres connection string",
	Sources: cli.EnvVars("DATABASE_URL"),
}

var HTTPAddr = &cli.StringFlag{
	Name:    "http-addr",
	Usage:   "The address the API server listens on",
	Value:   ":8080",
	Sources: cli.EnvVars("HTTP_ADDR"),
}

var MetricsAddr = &cli.StringFlag{
	Name:    "metrics-addr",
	Usage:   "The address the metrics server listens on",
	Value:   ":9090",
	Sources: cli.EnvVars("METRICS_ADDR"),
}

var JWTSecret = &cli.StringFlag{
	Name:    "jwt-secret",
	Usage:   "The secret used to sign bearer tokens",
	Sources: cli.EnvVars("JWT_SECRET"),
}

var JWTExpiry = &cli.DurationFlag{
	Name:    "jwt-expiry",
	Usage:   "Lifetime of issued bearer tokens",
	Value:   7 * 24 * time.Hour,
	Sources: cli.EnvVars("JWT_EXPIRY"),
}

var RedisURL = &cli.StringFlag{
	Name:    "redis-url",
	Usage:   "The URL of the redis server, caching is disabled when empty",
	Sources: cli.EnvVars("REDIS_URL"),
}

var CacheTTL = &cli.DurationFlag{
	Name:    "cache-ttl",
	Usage:   "How long cached lookups are kept",
	Value:   5 * time.Minute,
	Sources: cli.EnvVars("CACHE_TTL"),
}

var NATSURL = &cli.StringFlag{
	Name:    "nats-url",
	Aliases: []string{"n"},
	Usage:   "The URL of the NATS server, events are not published when empty",
	Sources: cli.EnvVars("NATS_URL"),
}

var InitNATS = &cli.BoolFlag{
	Name:        "nats-init",
	Aliases:     []string{"i"},
	Usage:       "Initialize the NATS server: create streams, consumers, etc.",
	DefaultText: "false",
	Value:       false,
	Sources:     cli.EnvVars("NATS_INIT"),
}

var UserID = &cli.Int64Flag{
	Name:     "user-id",
	Aliases:  []string{"u"},
	Usage:    "The user to act as",
	Required: true,
}

var FeedVariant = &cli.StringFlag{
	Name:  "variant",
	Usage: "The feed to print: full, priority or search",
	Value: "full",
	Validator: func(value string) error {
		if !slices.Contains(validFeedVariants, value) {
			return fmt.Errorf("invalid feed variant: %s, allowed values are: %s", value, validFeedVariants)
		}
		return nil
	},
}

var Query = &cli.StringFlag{
	Name:  "query",
	Usage: "Text to search for",
}

var Tag = &cli.StringFlag{
	Name:  "tag",
	Usage: "Tag name to search for",
}
