// Package cache wraps the public read paths with a redis read-through
// layer. Cache failures always degrade to the database, never to an
// error for the caller.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Frajuan18/Gym-sub000/internal/logger"
	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	activeFAQsKeyPrefix  = "faqs:active:"
	availableServicesKey = "services:available"
)

type faqReader interface {
	GetActive(ctx context.Context, category string) ([]models.FAQ, error)
}

type serviceReader interface {
	GetAvailable(ctx context.Context) ([]models.Service, error)
}

// ContentCache serves the public FAQ and service-catalog reads from
// redis with a short TTL. Admin writes call Invalidate.
type ContentCache struct {
	faqs     faqReader
	services serviceReader
	redis    *redis.Client
	ttl      time.Duration
}

func NewContentCache(faqs faqReader, services serviceReader, rdb *redis.Client) *ContentCache {
	return &ContentCache{
		faqs:     faqs,
		services: services,
		redis:    rdb,
		ttl:      5 * time.Minute,
	}
}

func (c *ContentCache) GetActive(ctx context.Context, category string) ([]models.FAQ, error) {
	key := activeFAQsKeyPrefix + category

	var cached []models.FAQ
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	faqs, err := c.faqs.GetActive(ctx, category)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, faqs)
	return faqs, nil
}

func (c *ContentCache) GetAvailable(ctx context.Context) ([]models.Service, error) {
	var cached []models.Service
	if c.lookup(ctx, availableServicesKey, &cached) {
		return cached, nil
	}

	services, err := c.services.GetAvailable(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, availableServicesKey, services)
	return services, nil
}

// InvalidateFAQs drops every cached FAQ listing; categories are not
// tracked individually.
func (c *ContentCache) InvalidateFAQs(ctx context.Context) {
	iter := c.redis.Scan(ctx, 0, activeFAQsKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.redis.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Log.Warn("faq cache invalidation failed", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		logger.Log.Warn("faq cache scan failed", zap.Error(err))
	}
}

func (c *ContentCache) InvalidateServices(ctx context.Context) {
	if err := c.redis.Del(ctx, availableServicesKey).Err(); err != nil {
		logger.Log.Warn("service cache invalidation failed", zap.Error(err))
	}
}

func (c *ContentCache) lookup(ctx context.Context, key string, dest any) bool {
	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if err := json.Unmarshal(data, dest); err != nil {
			logger.Log.Warn("cache entry unreadable, falling through to db", zap.String("key", key), zap.Error(err))
			return false
		}
		return true
	case err == redis.Nil:
		return false
	default:
		logger.Log.Warn("redis get failed, falling through to db", zap.String("key", key), zap.Error(err))
		return false
	}
}

func (c *ContentCache) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf("failed to marshal cache entry %s", key), zap.Error(err))
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.Log.Warn("redis set failed", zap.String("key", key), zap.Error(err))
	}
}
