package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// RateLimiter enforces per-IP and per-address request limits backed by Redis
type RateLimiter struct {
	client     *redis.Client
	perIP      int
	perAddress int
	window     time.Duration
}

// NewRedisClient creates a Redis client from a connection URL
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// NewRateLimiter creates a rate limiter from the config map
func NewRateLimiter(client *redis.Client, config map[string]interface{}) *RateLimiter {
	rl := &RateLimiter{
		client:     client,
		perIP:      10,
		perAddress: 1,
		window:     24 * time.Hour,
	}

	if v, ok := config["per_ip"].(int); ok {
		rl.perIP = v
	}
	if v, ok := config["per_address"].(int); ok {
		rl.perAddress = v
	}
	if v, ok := config["window"].(time.Duration); ok {
		rl.window = v
	}

	return rl
}

// CheckIPLimit reports whether the IP has exhausted its request quota
func (rl *RateLimiter) CheckIPLimit(ctx context.Context, ip string) (bool, error) {
	count, err := rl.GetCurrentCount(ctx, ipKey(ip))
	if err != nil {
		return false, err
	}
	return count >= rl.perIP, nil
}

// CheckAddressLimit reports whether the address has exhausted its request quota
func (rl *RateLimiter) CheckAddressLimit(ctx context.Context, address string) (bool, error) {
	count, err := rl.GetCurrentCount(ctx, addressKey(address))
	if err != nil {
		return false, err
	}
	return count >= rl.perAddress, nil
}

// IncrementIPCounter increments the IP counter and starts the window on first use
func (rl *RateLimiter) IncrementIPCounter(ctx context.Context, ip string) error {
	return rl.increment(ctx, ipKey(ip))
}

// IncrementAddressCounter increments the address counter and starts the window on first use
func (rl *RateLimiter) IncrementAddressCounter(ctx context.Context, address string) error {
	return rl.increment(ctx, addressKey(address))
}

func (rl *RateLimiter) increment(ctx context.Context, key string) error {
	count, err := rl.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to increment counter: %w", err)
	}

	// First hit in the window starts the expiry clock
	if count == 1 {
		if err := rl.client.Expire(ctx, key, rl.window).Err(); err != nil {
			return fmt.Errorf("failed to set counter expiry: %w", err)
		}
	}

	return nil
}

// GetCurrentCount returns the current counter value for a key, 0 when absent
func (rl *RateLimiter) GetCurrentCount(ctx context.Context, key string) (int, error) {
	val, err := rl.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get counter: %w", err)
	}

	count, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid counter value %q: %w", val, err)
	}
	return count, nil
}

// Reset deletes a counter
func (rl *RateLimiter) Reset(ctx context.Context, key string) error {
	if err := rl.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to reset counter: %w", err)
	}
	return nil
}

// GetRemainingTime returns how long until a counter expires, 0 when absent
func (rl *RateLimiter) GetRemainingTime(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := rl.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get counter TTL: %w", err)
	}

	// Redis reports negative TTLs for missing keys and keys without expiry
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}

func ipKey(ip string) string {
	return "ratelimit:ip:" + ip
}

func addressKey(address string) string {
	return "ratelimit:address:" + address
}
