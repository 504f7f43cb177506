package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"neighbornet/internal/config"
)

const keyPrefix = "neighbornet:"

// Redis is a JSON cache backed by redis.
type Redis struct {
	Logger *slog.Logger
	Config *config.Config

	client *redis.Client
}

func (r *Redis) Init(ctx context.Context) error {
	r.Logger = r.Logger.With("component", "cache.Redis")

	opts, err := redis.ParseURL(r.Config.RedisURL)
	if err != nil {
		return fmt.Errorf("parsing redis url: %w", err)
	}

	r.client = redis.NewClient(opts)

	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}

	r.Logger.Info("Redis connected", "addr", opts.Addr)

	return nil
}

func (r *Redis) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Shutdown(_ context.Context) error {
	return r.client.Close()
}

func (r *Redis) Get(ctx context.Context, key string, dst any) (bool, error) {
	payload, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(payload, dst); err != nil {
		return false, fmt.Errorf("decoding cached %s: %w", key, err)
	}

	return true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, keyPrefix+key, payload, ttl).Err()
}
