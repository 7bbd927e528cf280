package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"questgen/pkg/config"
	"questgen/pkg/logger"
)

// Client wraps the Redis client, ใช้เป็น backing store ของ rate limiter
type Client struct {
	rdb *redis.Client
}

// NewClient creates a new Redis client from config
func NewClient(cfg *config.RedisConfig) (*Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	if cfg.Password != "" {
		opt.Password = cfg.Password
	}
	if cfg.DB > 0 {
		opt.DB = cfg.DB
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("Redis connected", "url", cfg.URL)

	return &Client{rdb: rdb}, nil
}

// IncrWithWindow เพิ่ม counter ของ key และตั้ง TTL เมื่อเป็น hit แรกของ window
// คืนค่า counter หลัง increment (fixed-window rate limit primitive)
func (c *Client) IncrWithWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}

// TTL คืนเวลาที่เหลือก่อน window หมดอายุ
func (c *Client) TTL(ctx context.Context, key string) (time.Duration, error) {
	return c.rdb.TTL(ctx, key).Result()
}

// Ping tests the connection
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
