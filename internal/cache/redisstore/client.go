// Package redisstore wraps the Redis client operations used by the
// descriptor cache.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rastermaps/renderconfig/internal/cache"
	"github.com/rastermaps/renderconfig/internal/core/observability"
)

var _ cache.Interface = (*Client)(nil)

type Option func(*redis.Options)

func WithPoolSize(n int) Option {
	return func(o *redis.Options) { o.PoolSize = n }
}

func WithDialTimeout(d time.Duration) Option {
	return func(o *redis.Options) { o.DialTimeout = d }
}

func WithReadTimeout(d time.Duration) Option {
	return func(o *redis.Options) { o.ReadTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	return func(o *redis.Options) { o.WriteTimeout = d }
}

type Client struct {
	rdb *redis.Client
}

func New(ctx context.Context, addr string, opts ...Option) (*Client, error) {
	if addr == "" {
		return nil, errors.New("redis address is required")
	}

	ro := &redis.Options{
		Addr:         addr,
		PoolSize:     32,
		MinIdleConns: 2,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	}
	for _, f := range opts {
		f(ro)
	}

	rdb := redis.NewClient(ro)

	start := time.Now()
	err := rdb.Ping(ctx).Err()
	observability.ObserveCacheOp("ping", err, time.Since(start).Seconds())
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Client{rdb: rdb}, nil
}

func (c *Client) Get(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()
	val, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		observability.ObserveCacheOp("get", nil, time.Since(start).Seconds())
		observability.IncCacheMiss()
		return nil, false, nil
	}
	observability.ObserveCacheOp("get", err, time.Since(start).Seconds())
	if err != nil {
		return nil, false, fmt.Errorf("redis GET %s: %w", key, err)
	}
	observability.IncCacheHit()
	return val, true, nil
}

func (c *Client) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	start := time.Now()
	err := c.rdb.Set(ctx, key, val, ttl).Err()
	observability.ObserveCacheOp("set", err, time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("redis SET %s: %w", key, err)
	}
	return nil
}

// DelPrefix scans the keyspace under prefix and deletes in batches.
func (c *Client) DelPrefix(ctx context.Context, prefix string) (int, error) {
	start := time.Now()
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, prefix+"*", 256).Result()
		if err != nil {
			observability.ObserveCacheOp("del_prefix", err, time.Since(start).Seconds())
			return deleted, fmt.Errorf("redis SCAN %s*: %w", prefix, err)
		}
		if len(keys) > 0 {
			n, err := c.rdb.Del(ctx, keys...).Result()
			if err != nil {
				observability.ObserveCacheOp("del_prefix", err, time.Since(start).Seconds())
				return deleted, fmt.Errorf("redis DEL %d keys: %w", len(keys), err)
			}
			deleted += int(n)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	observability.ObserveCacheOp("del_prefix", nil, time.Since(start).Seconds())
	return deleted, nil
}

func (c *Client) Close() error { return c.rdb.Close() }
