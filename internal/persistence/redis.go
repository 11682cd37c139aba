package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mack42/weekly-uptime-status-report/internal/config"
)

// TicketCache stores fetched ticket descriptions between runs so a ticket
// referenced in several weekly reports is looked up once. The cache is
// strictly advisory: every failure degrades to a miss.
type TicketCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewTicketCache connects to Redis using the provided configuration.
// Returns nil when no cache is configured.
func NewTicketCache(cfg config.RedisConfig, logger *zap.Logger) *TicketCache {
	if !cfg.Enabled() {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis, ticket cache degraded", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &TicketCache{client: client, ttl: cfg.TTL, logger: logger}
}

// Get returns the cached description for an issue key, if present.
func (c *TicketCache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}
	val, err := c.client.Get(ctx, cacheKey(key)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("ticket cache read failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return val, true
}

// Set stores a fetched description with the configured TTL.
func (c *TicketCache) Set(ctx context.Context, key, description string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(key), description, c.ttl).Err(); err != nil {
		c.logger.Warn("ticket cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Close closes the client.
func (c *TicketCache) Close() {
	if c != nil && c.client != nil {
		_ = c.client.Close()
	}
}

func cacheKey(issueKey string) string {
	return "ticket:description:" + issueKey
}
