package reconcile

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"asset-ledger/core/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCache(ttl time.Duration) (*Cache, *MemoryStore, *clock.Fixed) {
	store := NewMemoryStore()
	clk := &clock.Fixed{T: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	return New(store, ttl, clk, zap.NewNop()), store, clk
}

func TestCache_GetSet(t *testing.T) {
	ctx := context.Background()
	cache, store, clk := newTestCache(5 * time.Minute)

	_, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", []byte("v")))

	entry, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, clk.T, entry.InsertedAt)
	assert.Equal(t, clk.T.Add(5*time.Minute), entry.ExpiresAt)

	data, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), data)
}

func TestCache_ExpiredEntryIsEvicted(t *testing.T) {
	ctx := context.Background()
	cache, store, clk := newTestCache(time.Minute)

	require.NoError(t, cache.Set(ctx, "k", []byte("v")))
	clk.Advance(time.Minute)

	_, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestCache_GetOrLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("LoadsOnceWhileFresh", func(t *testing.T) {
		cache, _, clk := newTestCache(time.Minute)
		calls := 0
		load := func(context.Context) ([]byte, error) {
			calls++
			return []byte("snapshot"), nil
		}

		for i := 0; i < 3; i++ {
			data, err := cache.GetOrLoad(ctx, "secondary", load)
			require.NoError(t, err)
			assert.Equal(t, []byte("snapshot"), data)
		}
		assert.Equal(t, 1, calls)

		clk.Advance(2 * time.Minute)
		_, err := cache.GetOrLoad(ctx, "secondary", load)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("FailuresAreNotCached", func(t *testing.T) {
		cache, store, _ := newTestCache(time.Minute)
		boom := errors.New("boom")

		_, err := cache.GetOrLoad(ctx, "secondary", func(context.Context) ([]byte, error) {
			return nil, boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, store.Len())

		data, err := cache.GetOrLoad(ctx, "secondary", func(context.Context) ([]byte, error) {
			return []byte("ok"), nil
		})
		require.NoError(t, err)
		assert.Equal(t, []byte("ok"), data)
	})

	t.Run("ConcurrentMissesShareOneLoad", func(t *testing.T) {
		cache, _, _ := newTestCache(time.Minute)
		var calls int32
		release := make(chan struct{})
		load := func(context.Context) ([]byte, error) {
			atomic.AddInt32(&calls, 1)
			<-release
			return []byte("v"), nil
		}

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				data, err := cache.GetOrLoad(ctx, "k", load)
				assert.NoError(t, err)
				assert.Equal(t, []byte("v"), data)
			}()
		}

		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(10))
		assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(1))
	})
}

func TestCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	cache, _, _ := newTestCache(time.Minute)

	require.NoError(t, cache.Set(ctx, "k", []byte("v")))
	require.NoError(t, cache.Invalidate(ctx, "k"))

	_, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	cache, err := Open(ctx, Config{Backend: BackendMemory, TTLSeconds: 60}, clock.New(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cache.TTL())

	_, err = Open(ctx, Config{Backend: "memcached"}, clock.New(), zap.NewNop())
	assert.Error(t, err)
}

func TestConfig_TTL(t *testing.T) {
	assert.Equal(t, 5*time.Minute, Config{}.TTL())
	assert.Equal(t, 30*time.Second, Config{TTLSeconds: 30}.TTL())
}
