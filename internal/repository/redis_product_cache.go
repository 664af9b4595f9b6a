package repository

import (
	"context"
	"encoding/json"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
	"github.com/RuslanKralin/e-commerce-store/pkg/redis"
)

// featuredProductsKey holds the cached featured listing. No TTL: the
// cache is refreshed explicitly whenever a product's featured flag or
// the catalog changes.
const featuredProductsKey = "featuredProducts"

// RedisProductCache implements ProductCache using Redis
type RedisProductCache struct {
	client *redis.Client
}

// NewRedisProductCache creates a new RedisProductCache
func NewRedisProductCache(client *redis.Client) *RedisProductCache {
	return &RedisProductCache{client: client}
}

// GetFeatured returns cached featured products, or nil on a miss
func (c *RedisProductCache) GetFeatured(ctx context.Context) ([]*domain.Product, error) {
	data, err := c.client.Get(ctx, featuredProductsKey).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var products []*domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SetFeatured stores the featured products listing
func (c *RedisProductCache) SetFeatured(ctx context.Context, products []*domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, featuredProductsKey, data, 0).Err()
}
