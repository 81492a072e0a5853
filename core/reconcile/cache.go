package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"asset-ledger/core/clock"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// LoadFunc produces the value for a missing or expired key.
type LoadFunc func(ctx context.Context) ([]byte, error)

// Cache is a TTL cache over a Store. Concurrent loads of the same key are
// coalesced; failed loads are never cached.
type Cache struct {
	store  Store
	ttl    time.Duration
	clock  clock.Clock
	logger *zap.Logger
	sf     singleflight.Group
}

// New creates a Cache over store.
func New(store Store, ttl time.Duration, clk clock.Clock, logger *zap.Logger) *Cache {
	return &Cache{
		store:  store,
		ttl:    ttl,
		clock:  clk,
		logger: logger,
	}
}

// Open builds the cache backend selected by cfg.
func Open(ctx context.Context, cfg Config, clk clock.Clock, logger *zap.Logger) (*Cache, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return New(NewMemoryStore(), cfg.TTL(), clk, logger), nil
	case BackendRedis:
		store, err := DialRedis(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return New(store, cfg.TTL(), clk, logger), nil
	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", cfg.Backend)
	}
}

// TTL returns the lifetime given to new entries.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get returns the live value for key. An expired entry is evicted and reported
// as a miss.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	entry, err := c.store.Get(ctx, key)
	if errors.Is(err, ErrMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if entry.Expired(c.clock.Now()) {
		if err := c.store.Delete(ctx, key); err != nil {
			c.logger.Warn("Failed to evict expired cache entry", zap.String("key", key), zap.Error(err))
		}
		return nil, false, nil
	}
	return entry.Data, true, nil
}

// Set stores data under key with a fresh TTL.
func (c *Cache) Set(ctx context.Context, key string, data []byte) error {
	now := c.clock.Now()
	return c.store.Set(ctx, key, Entry{
		Data:       data,
		InsertedAt: now,
		ExpiresAt:  now.Add(c.ttl),
	})
}

// Invalidate drops key.
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	return c.store.Delete(ctx, key)
}

// GetOrLoad returns the live value for key, calling load on a miss.
// Callers racing on the same key share one load.
func (c *Cache) GetOrLoad(ctx context.Context, key string, load LoadFunc) ([]byte, error) {
	data, ok, err := c.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Cache read failed, loading", zap.String("key", key), zap.Error(err))
	}
	if ok {
		return data, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring the flight
		if data, ok, err := c.Get(ctx, key); err == nil && ok {
			return data, nil
		}

		data, err := load(ctx)
		if err != nil {
			return nil, err
		}

		if err := c.Set(ctx, key, data); err != nil {
			c.logger.Warn("Failed to store cache entry", zap.String("key", key), zap.Error(err))
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}
