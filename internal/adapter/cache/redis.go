// Package cache keeps the last fetched exchange rate in Redis so restarts and
// provider outages fall back to a recent value.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

const keyPrefix = "officedash:fxrate:"

// Connect initializes a Redis client from a redis:// URL or host:port and pings it.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// RateCache stores one rate per currency code in a Redis hash.
type RateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRateCache creates a RateCache. A non-positive ttl keeps entries forever.
func NewRateCache(client *redis.Client, ttl time.Duration) *RateCache {
	return &RateCache{client: client, ttl: ttl}
}

// Get returns the cached rate for code. ok is false when nothing usable is cached.
func (c *RateCache) Get(ctx context.Context, code domain.Currency) (domain.RateQuote, bool, error) {
	data, err := c.client.HGetAll(ctx, keyPrefix+string(code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.RateQuote{}, false, nil
		}
		return domain.RateQuote{}, false, fmt.Errorf("get cached rate %s: %w", code, err)
	}
	if len(data) == 0 {
		return domain.RateQuote{}, false, nil
	}

	rate, err := decimal.NewFromString(data["rate"])
	if err != nil || !rate.IsPositive() {
		return domain.RateQuote{}, false, nil
	}

	cached := domain.RateQuote{Code: code, Rate: rate}
	if unix, convErr := strconv.ParseInt(data["fetched_at"], 10, 64); convErr == nil && unix > 0 {
		cached.FetchedAt = time.Unix(unix, 0).UTC()
	}
	return cached, true, nil
}

// Set stores a quote under its currency code.
func (c *RateCache) Set(ctx context.Context, q domain.RateQuote) error {
	key := keyPrefix + string(q.Code)
	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, key, "rate", q.Rate.String(), "fetched_at", q.FetchedAt.Unix())
		if c.ttl > 0 {
			p.Expire(ctx, key, c.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("set cached rate %s: %w", q.Code, err)
	}
	return nil
}
