package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"cloudstay/internal/logger"
)

// KeyPrefix namespaces every key this process writes.
const KeyPrefix = "cloudstay:"

// Client is a fail-safe redis cache: connectivity errors read as a miss and
// writes are best effort. A nil *Client is a valid, disabled cache.
type Client struct {
	rdb *redis.Client
}

// New connects lazily to addr. An empty addr returns a nil (disabled) client.
func New(addr, password string, db int) *Client {
	if addr == "" {
		return nil
	}
	return &Client{rdb: redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})}
}

// Enabled reports whether a redis server is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Ping reports connectivity errors, unlike the data methods.
func (c *Client) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

// Get returns the raw value, or nil on a miss or when redis is unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if !c.Enabled() {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, KeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.DebugContext(ctx, "cache read failed", "key", key, "error", err)
		}
		return nil, nil
	}
	return data, nil
}

// Set stores value for ttl. Failures are logged and dropped.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !c.Enabled() {
		return nil
	}
	if err := c.rdb.Set(ctx, KeyPrefix+key, value, ttl).Err(); err != nil {
		logger.DebugContext(ctx, "cache write failed", "key", key, "error", err)
	}
	return nil
}

// Delete removes key. Failures are logged and dropped.
func (c *Client) Delete(ctx context.Context, key string) error {
	if !c.Enabled() {
		return nil
	}
	if err := c.rdb.Del(ctx, KeyPrefix+key).Err(); err != nil {
		logger.WarnContext(ctx, "cache invalidation failed", "key", key, "error", err)
	}
	return nil
}

// GetJSON decodes a cached value into dst and reports whether it was a hit.
// Undecodable entries count as a miss.
func (c *Client) GetJSON(ctx context.Context, key string, dst any) bool {
	data, _ := c.Get(ctx, key)
	if data == nil {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

// SetJSON encodes v and stores it for ttl.
func (c *Client) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if !c.Enabled() {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		logger.WarnContext(ctx, "cache encode failed", "key", key, "error", err)
		return
	}
	_ = c.Set(ctx, key, data, ttl)
}

// Close releases the connection pool.
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Close()
}
