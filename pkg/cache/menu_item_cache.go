package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// MenuItemCacheTTL is the time-to-live for cached menu items.
	MenuItemCacheTTL = 24 * time.Hour

	menuItemKeyPrefix = "menu:item"
)

// CachedMenuItem is the read model of a menu item stored as a Redis hash.
// Price is kept in its two-decimal string form.
type CachedMenuItem struct {
	ID          int64
	Name        string
	Description string
	Price       string
	Stock       int
	Calories    *int
	Retired     bool
}

// MenuItemCache reads and writes menu item hashes.
// Key format: "menu:item:{itemID}"
type MenuItemCache struct {
	client *RedisClient
}

// NewMenuItemCache creates a MenuItemCache backed by the given RedisClient.
func NewMenuItemCache(r *RedisClient) *MenuItemCache {
	return &MenuItemCache{client: r}
}

// Get retrieves a cached item. Returns redis.Nil when the key does not exist
// or has expired.
func (c *MenuItemCache) Get(ctx context.Context, itemID int64) (*CachedMenuItem, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(itemID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil
	}

	item := &CachedMenuItem{
		Name:        vals["name"],
		Description: vals["description"],
		Price:       vals["price"],
	}
	if item.ID, err = strconv.ParseInt(vals["id"], 10, 64); err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	if item.Stock, err = strconv.Atoi(vals["stock"]); err != nil {
		return nil, fmt.Errorf("cache parse stock: %w", err)
	}
	if raw := vals["calories"]; raw != "" {
		cal, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("cache parse calories: %w", err)
		}
		item.Calories = &cal
	}
	if item.Retired, err = strconv.ParseBool(vals["retired"]); err != nil {
		return nil, fmt.Errorf("cache parse retired: %w", err)
	}
	return item, nil
}

// Set writes a cached item with a 24-hour TTL in one pipeline.
func (c *MenuItemCache) Set(ctx context.Context, item *CachedMenuItem) error {
	calories := ""
	if item.Calories != nil {
		calories = strconv.Itoa(*item.Calories)
	}
	key := c.key(item.ID)
	pipe := c.client.Client().TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key,
		"id", strconv.FormatInt(item.ID, 10),
		"name", item.Name,
		"description", item.Description,
		"price", item.Price,
		"stock", strconv.Itoa(item.Stock),
		"calories", calories,
		"retired", strconv.FormatBool(item.Retired),
	)
	pipe.Expire(ctx, key, MenuItemCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached item.
func (c *MenuItemCache) Delete(ctx context.Context, itemID int64) error {
	if err := c.client.Client().Del(ctx, c.key(itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *MenuItemCache) key(itemID int64) string {
	return fmt.Sprintf("%s:%d", menuItemKeyPrefix, itemID)
}
