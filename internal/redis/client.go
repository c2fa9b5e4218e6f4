package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"parcel_market/internal/models"
)

type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

func Initialize(redisURL string, cacheTTL time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, ttl: cacheTTL}, nil
}

// Tracking cache: the public tracking view is the hottest read path, so
// resolved orders are kept for a short TTL keyed by tracking code.

func (c *Client) SetTrackedOrder(trackingNumber string, order *models.Order) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}
	return c.rdb.Set(ctx, "track:"+trackingNumber, jsonData, c.ttl).Err()
}

func (c *Client) GetTrackedOrder(trackingNumber string) (*models.Order, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "track:"+trackingNumber).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("tracked order not cached")
		}
		return nil, fmt.Errorf("failed to get tracked order: %w", err)
	}

	var order models.Order
	if err := json.Unmarshal([]byte(val), &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order: %w", err)
	}
	return &order, nil
}

func (c *Client) DeleteTrackedOrder(trackingNumber string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "track:"+trackingNumber).Err()
}

// Payment sessions: checkout session ids map back to the order they were
// opened for until the session is verified or expires.

func (c *Client) SetPaymentSession(sessionID string, orderID uint) error {
	ctx := context.Background()
	return c.rdb.Set(ctx, "paysession:"+sessionID, orderID, 24*time.Hour).Err()
}

func (c *Client) GetPaymentSession(sessionID string) (uint, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "paysession:"+sessionID).Uint64()
	if err != nil {
		if err == redis.Nil {
			return 0, fmt.Errorf("payment session not found")
		}
		return 0, fmt.Errorf("failed to get payment session: %w", err)
	}
	return uint(val), nil
}

func (c *Client) DeletePaymentSession(sessionID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "paysession:"+sessionID).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
