package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/storefront/admin-api/internal/core/domain"
)

const (
	productListKey = "catalog:products"
	productListTTL = 5 * time.Minute
)

// ProductCache is a read-through cache for the full product list, invalidated
// on every catalog mutation. Cache errors are logged and otherwise ignored:
// the store is always the source of truth.
type ProductCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
func NewProductCache(client *redis.Client, log zerolog.Logger) *ProductCache {
	return &ProductCache{client: client, log: log}
}

// GetList returns the cached product list and whether the cache was warm.
func (c *ProductCache) GetList(ctx context.Context) ([]domain.Product, bool) {
	raw, err := c.client.Get(ctx, productListKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Msg("product cache read failed")
		}
		return nil, false
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		c.log.Warn().Err(err).Msg("product cache entry corrupt, dropping")
		c.Invalidate(ctx)
		return nil, false
	}
	return products, true
}

// SetList stores the product list with a bounded TTL.
func (c *ProductCache) SetList(ctx context.Context, products []domain.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		c.log.Warn().Err(err).Msg("product cache encode failed")
		return
	}
	if err := c.client.Set(ctx, productListKey, raw, productListTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("product cache write failed")
	}
}

// Invalidate drops the cached list after a mutation.
func (c *ProductCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, productListKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("product cache invalidation failed")
	}
}
