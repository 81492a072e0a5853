// Package reconcile provides the TTL cache used while reconciling external
// sheets against the store.
//
// Lookups that need the secondary sheet would otherwise download and parse it
// on every request. The cache keeps the parsed snapshot for a bounded time:
//
//	cache, err := reconcile.Open(ctx, cfg.Cache, clock.New(), logger)
//	data, err := cache.GetOrLoad(ctx, "secondary:audit", func(ctx context.Context) ([]byte, error) {
//	    return fetchAndEncode(ctx)
//	})
//
// Entries carry their insertion and expiry instants. A read past the expiry is
// a miss and evicts the entry. Concurrent misses on the same key are collapsed
// into a single load with singleflight, and a load error is returned to every
// waiter without being cached.
//
// Two backends exist: MemoryStore for a single process and RedisStore when
// several processes should share snapshots.
package reconcile
