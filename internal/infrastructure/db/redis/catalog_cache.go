package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smartlms/elearning-system/internal/core/domain"
)

const (
	catalogKey = "catalog:courses"
	catalogTTL = 30 * time.Second
)

// CatalogCache is a cache-aside store for the full course catalog. The TTL is
// short: the catalog is read on every visit but mutated rarely, and every
// course mutation invalidates the key anyway.
type CatalogCache struct {
	client *redis.Client
}

func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

// Get returns the cached catalog, or (nil, nil) on a miss.
func (c *CatalogCache) Get(ctx context.Context) ([]*domain.Course, error) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("catalog cache get: %w", err)
	}

	var courses []*domain.Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		return nil, fmt.Errorf("catalog cache decode: %w", err)
	}
	return courses, nil
}

func (c *CatalogCache) Set(ctx context.Context, courses []*domain.Course) error {
	raw, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("catalog cache encode: %w", err)
	}
	return c.client.Set(ctx, catalogKey, raw, catalogTTL).Err()
}

func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}
