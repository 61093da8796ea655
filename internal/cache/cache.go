// Package cache holds the Redis client backing the refresh-token session
// store. Record reads never go through Redis.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is a thin Redis wrapper scoped to what the token store needs:
// byte values with a TTL, keyed deletes, and a miss that is not an error.
// Connectivity failures are returned, not swallowed; a token that cannot
// be verified has to count as revoked.
type Client struct {
	client *redis.Client
}

// New connects to the Redis instance at addr. With an empty addr the
// client is inert: writes and deletes succeed, every read is a miss.
func New(addr, password string, db int) *Client {
	if addr == "" {
		return &Client{}
	}
	return &Client{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// Get returns the stored value, or nil when the key is absent.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Set stores value under key for ttl.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key. Deleting a key that does not exist is not an
// error.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, key).Err()
}
