package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/handyman-marketplace/internal/logger"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

const (
	keyPrefix     = "catalog:"
	keyServices   = keyPrefix + "services"
	keyCategories = keyPrefix + "categories"
)

func keyService(slug string) string  { return keyPrefix + "service:" + slug }
func keySubService(id string) string { return keyPrefix + "subservice:" + id }

var (
	_ catalog.Reader      = (*Catalog)(nil)
	_ catalog.Invalidator = (*Catalog)(nil)
)

// Catalog is a read-through cache in front of a catalog.Reader. Redis
// failures degrade to direct reads; missing rows are never cached.
type Catalog struct {
	next catalog.Reader
	rdb  *redis.Client
	ttl  time.Duration
	log  *zap.Logger
}

func NewCatalog(next catalog.Reader, rdb *redis.Client, ttl time.Duration, log *zap.Logger) *Catalog {
	return &Catalog{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
		log:  logger.OrNop(log).Named("cache.catalog"),
	}
}

func (c *Catalog) ListServices(ctx context.Context) ([]models.Service, error) {
	return readThrough(ctx, c, keyServices, func() ([]models.Service, error) {
		return c.next.ListServices(ctx)
	})
}

func (c *Catalog) GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error) {
	return readThrough(ctx, c, keyService(slug), func() (*models.Service, error) {
		return c.next.GetServiceBySlug(ctx, slug)
	})
}

func (c *Catalog) GetSubService(ctx context.Context, id string) (*models.SubService, error) {
	return readThrough(ctx, c, keySubService(id), func() (*models.SubService, error) {
		return c.next.GetSubService(ctx, id)
	})
}

func (c *Catalog) ListCategories(ctx context.Context) ([]models.Category, error) {
	return readThrough(ctx, c, keyCategories, func() ([]models.Category, error) {
		return c.next.ListCategories(ctx)
	})
}

// Invalidate drops every catalog key.
func (c *Catalog) Invalidate(ctx context.Context) error {
	var keys []string
	iter := c.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// Warm reloads the hot keys from the underlying reader.
func (c *Catalog) Warm(ctx context.Context) error {
	services, err := c.next.ListServices(ctx)
	if err != nil {
		return err
	}
	c.store(ctx, keyServices, services)

	for i := range services {
		svc := services[i]
		c.store(ctx, keyService(svc.Slug), &svc)
		for _, sub := range svc.SubServices {
			full, err := c.next.GetSubService(ctx, sub.ID)
			if err != nil {
				return err
			}
			if full != nil {
				c.store(ctx, keySubService(sub.ID), full)
			}
		}
	}

	categories, err := c.next.ListCategories(ctx)
	if err != nil {
		return err
	}
	c.store(ctx, keyCategories, categories)

	c.log.Debug("catalog cache warmed", zap.Int("services", len(services)))
	return nil
}

func (c *Catalog) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.log.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func readThrough[T any](ctx context.Context, c *Catalog, key string, load func() (T, error)) (T, error) {
	var cached T
	data, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil {
			return cached, nil
		}
		c.log.Warn("cache entry unreadable", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	if !isNil(v) {
		c.store(ctx, key, v)
	}
	return v, nil
}

func isNil(v any) bool {
	switch t := v.(type) {
	case *models.Service:
		return t == nil
	case *models.SubService:
		return t == nil
	}
	return false
}
