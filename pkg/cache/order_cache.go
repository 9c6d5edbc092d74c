package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const orderKeyPrefix = "order"

var errStaleVersion = errors.New("order cache entry is stale")

// CachedOrder is the denormalised read model of an order aggregate, stored as
// a JSON string. Money fields keep their two-decimal string form.
type CachedOrder struct {
	ID        int64             `json:"id"`
	Address   string            `json:"address"`
	Status    string            `json:"status"`
	Total     string            `json:"total"`
	Lines     []CachedOrderLine `json:"lines"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// CachedOrderLine is one line of a CachedOrder.
type CachedOrderLine struct {
	ItemID   int64  `json:"item_id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	SubTotal string `json:"sub_total"`
}

// OrderCache stores whole orders under "order:{orderID}". Every eviction
// increments "order:{orderID}:v" so that warms racing a write can be dropped.
type OrderCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewOrderCache creates an OrderCache whose entries expire after ttl.
func NewOrderCache(r *RedisClient, ttl time.Duration) *OrderCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &OrderCache{client: r, ttl: ttl}
}

// Get returns the cached order or redis.Nil on a miss.
func (c *OrderCache) Get(ctx context.Context, orderID int64) (*CachedOrder, error) {
	raw, err := c.client.Client().Get(ctx, c.key(orderID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var o CachedOrder
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("cache decode order: %w", err)
	}
	return &o, nil
}

// Version returns the eviction counter of the order. Zero means the order
// was never evicted or its counter expired.
func (c *OrderCache) Version(ctx context.Context, orderID int64) (int64, error) {
	v, err := c.client.Client().Get(ctx, c.versionKey(orderID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("cache get version: %w", err)
	}
	return v, nil
}

// SetIfVersion stores o only while the order's eviction counter still equals
// version, so an entry read before a concurrent eviction is never written
// back. It reports whether o was stored.
func (c *OrderCache) SetIfVersion(ctx context.Context, o *CachedOrder, version int64) (bool, error) {
	raw, err := json.Marshal(o)
	if err != nil {
		return false, fmt.Errorf("cache encode order: %w", err)
	}
	vkey := c.versionKey(o.ID)
	err = c.client.Client().Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, vkey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != version {
			return errStaleVersion
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, c.key(o.ID), raw, c.ttl)
			return nil
		})
		return err
	}, vkey)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errStaleVersion), errors.Is(err, redis.TxFailedErr):
		return false, nil
	}
	return false, fmt.Errorf("cache set: %w", err)
}

// Delete evicts the given orders and bumps their eviction counters.
func (c *OrderCache) Delete(ctx context.Context, orderIDs ...int64) error {
	if len(orderIDs) == 0 {
		return nil
	}
	_, err := c.client.Client().TxPipelined(ctx, func(p redis.Pipeliner) error {
		for _, id := range orderIDs {
			p.Del(ctx, c.key(id))
			p.Incr(ctx, c.versionKey(id))
			p.Expire(ctx, c.versionKey(id), c.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *OrderCache) key(orderID int64) string {
	return fmt.Sprintf("%s:%d", orderKeyPrefix, orderID)
}

func (c *OrderCache) versionKey(orderID int64) string {
	return fmt.Sprintf("%s:%d:v", orderKeyPrefix, orderID)
}
