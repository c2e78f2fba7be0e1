package market_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/haggle/internal/market"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)}
}

func TestCache_KeyIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	c := market.NewCache[int](time.Minute)
	c.Set("  Nike Trainers ", 7)

	got, ok := c.Get("nike trainers")
	require.True(t, ok)
	assert.Equal(t, 7, got)
}

func TestCache_Expiry(t *testing.T) {
	t.Parallel()

	clock := newClock()
	c := market.NewCache(time.Hour, market.WithClock[string](clock.Now))
	c.Set("q", "v")

	clock.Advance(59 * time.Minute)
	_, ok := c.Get("q")
	assert.True(t, ok)

	clock.Advance(time.Minute)
	_, ok = c.Get("q")
	assert.False(t, ok, "entry expires at exactly one TTL")
}

func TestCache_NonPositiveTTLUsesDefault(t *testing.T) {
	t.Parallel()

	clock := newClock()
	c := market.NewCache(0, market.WithClock[int](clock.Now))
	c.Set("q", 1)

	clock.Advance(market.DefaultTTL - time.Second)
	_, ok := c.Get("q")
	assert.True(t, ok)
}

func TestCache_GetOrLoad_CachesSuccess(t *testing.T) {
	t.Parallel()

	c := market.NewCache[int](time.Minute)
	var loads atomic.Int32
	load := func(context.Context) (int, error) {
		loads.Add(1)
		return 42, nil
	}

	for range 3 {
		got, err := c.GetOrLoad(context.Background(), "Q", load)
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	}
	assert.Equal(t, int32(1), loads.Load())
}

func TestCache_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	c := market.NewCache[int](time.Minute)
	boom := errors.New("boom")
	var loads atomic.Int32

	_, err := c.GetOrLoad(context.Background(), "q", func(context.Context) (int, error) {
		loads.Add(1)
		return 0, boom
	})
	require.ErrorIs(t, err, boom)

	got, err := c.GetOrLoad(context.Background(), "q", func(context.Context) (int, error) {
		loads.Add(1)
		return 5, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, got)
	assert.Equal(t, int32(2), loads.Load())
}

func TestCache_GetOrLoad_SingleFlight(t *testing.T) {
	t.Parallel()

	c := market.NewCache[int](time.Minute)
	var loads atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once

	load := func(context.Context) (int, error) {
		loads.Add(1)
		once.Do(func() { close(started) })
		<-release
		return 9, nil
	}

	var wg sync.WaitGroup
	results := make([]int, 10)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.GetOrLoad(context.Background(), "shared", load)
			assert.NoError(t, err)
			results[i] = v
		}()
	}

	<-started
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), loads.Load())
	for _, v := range results {
		assert.Equal(t, 9, v)
	}
}

func TestCache_Purge(t *testing.T) {
	t.Parallel()

	clock := newClock()
	c := market.NewCache(time.Hour, market.WithClock[int](clock.Now))
	c.Set("old", 1)
	clock.Advance(30 * time.Minute)
	c.Set("new", 2)
	clock.Advance(45 * time.Minute)

	assert.Equal(t, 1, c.Purge())
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("new")
	assert.True(t, ok)
}
