package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/greenloop/greenpoints/internal/domain/model"
)

const versionKey = "rewards:version"

// RedisCache caches catalog pages in redis. Invalidation bumps a version
// counter instead of scanning keys; stale entries fall out via TTL.
type RedisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCache builds a catalog cache on top of an existing redis client.
func NewRedisCache(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *RedisCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

// FilterKey derives a stable cache key component from a normalized filter.
func FilterKey(filter model.RewardFilter) string {
	filter = filter.Normalize()
	raw := fmt.Sprintf("%s|%s|%d|%d|%s|%t|%d|%d",
		filter.Category, strings.ToLower(filter.Search), filter.MinPoints, filter.MaxPoints,
		filter.SortBy, filter.Descending, filter.Page, filter.PageSize)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:8])
}

func (c *RedisCache) listKey(ctx context.Context, filter model.RewardFilter) (string, error) {
	version, err := c.client.Get(ctx, versionKey).Result()
	if err != nil {
		if err == redis.Nil {
			version = "0"
		} else {
			return "", err
		}
	}
	return fmt.Sprintf("rewards:list:%s:%s", version, FilterKey(filter)), nil
}

func (c *RedisCache) GetList(ctx context.Context, filter model.RewardFilter) (*model.RewardPage, bool) {
	key, err := c.listKey(ctx, filter)
	if err != nil {
		c.logger.Warn("catalog cache lookup failed", slog.String("error", err.Error()))
		return nil, false
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("catalog cache read failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	var page model.RewardPage
	if err := json.Unmarshal(payload, &page); err != nil {
		c.logger.Warn("catalog cache decode failed", slog.String("error", err.Error()))
		return nil, false
	}
	return &page, true
}

func (c *RedisCache) SetList(ctx context.Context, filter model.RewardFilter, page *model.RewardPage) {
	key, err := c.listKey(ctx, filter)
	if err != nil {
		return
	}

	payload, err := json.Marshal(page)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write failed", slog.String("error", err.Error()))
	}
}

func (c *RedisCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		c.logger.Warn("catalog cache invalidation failed", slog.String("error", err.Error()))
	}
}
