// Package cache provides the redis client and the read-through category cache.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultTTL = 10 * time.Minute

// Params defines the parameters required for the redis client
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Cache is a JSON value cache on top of redis.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to redis. It returns a nil *Cache when redis is not
// configured, which callers treat as "caching disabled".
func New(params Params) (*Cache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, category cache disabled")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.User,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewWithClient(client, cfg.TTL), nil
}

// NewWithClient wraps an existing client. A non-positive ttl uses the default.
func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &Cache{client: client, ttl: ttl}
}

// Get decodes the value at key into result. It reports false on a miss.
func (c *Cache) Get(ctx context.Context, key string, result any) (bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "cache get %s", key)
	}

	if err := json.Unmarshal(val, result); err != nil {
		return false, errors.Wrapf(err, "cache decode %s", key)
	}

	return true, nil
}

// Set stores value at key as JSON with the cache TTL.
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "cache encode %s", key)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return errors.Wrapf(err, "cache set %s", key)
	}

	return nil
}

// Invalidate removes keys.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "cache invalidate")
	}

	return nil
}
