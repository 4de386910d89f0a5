package util

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CategoryCache caches oracle verdicts keyed by a digest of the email
// content. The oracle is sampled at temperature zero, so a cached verdict
// for identical content is behavior-preserving.
type CategoryCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCategoryCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *CategoryCache {
	return &CategoryCache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

// VerdictKey builds the cache key for an email's subject and body.
func VerdictKey(subject, body string) string {
	sum := sha256.Sum256([]byte(subject + "\x00" + body))
	return fmt.Sprintf("classify:%s", hex.EncodeToString(sum[:16]))
}

// Get returns the cached verdict and whether it was present.
// Redis 挂了？为了安全：当 redis 不可用时，当作 cache miss 处理
func (c *CategoryCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("Redis verdict lookup failed, treating as miss",
				zap.String("key", key),
				zap.Error(err),
			)
		}
		return "", false
	}
	return val, true
}

// Set stores a verdict. Failures are logged and swallowed — the cache
// must never block classification.
func (c *CategoryCache) Set(ctx context.Context, key, category string) {
	if err := c.rdb.Set(ctx, key, category, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.Warn("Redis verdict store failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
