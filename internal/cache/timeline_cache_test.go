package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*TimelinePageCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewTimelinePageCache(client, ttl), mr
}

func TestTimelinePageCache_ReadThrough(t *testing.T) {
	c, _ := newTestCache(t, 20*time.Second)
	ctx := context.Background()

	_, ok := c.GetGlobal(ctx, 1)
	require.False(t, ok)

	c.SetGlobal(ctx, 1, []byte(`{"page":1}`))
	data, ok := c.GetGlobal(ctx, 1)
	require.True(t, ok)
	require.JSONEq(t, `{"page":1}`, string(data))

	// pages are independent entries
	_, ok = c.GetGlobal(ctx, 2)
	require.False(t, ok)
}

func TestTimelinePageCache_TTLExpiry(t *testing.T) {
	c, mr := newTestCache(t, 20*time.Second)
	ctx := context.Background()

	c.SetGlobal(ctx, 1, []byte("payload"))
	_, ok := c.GetGlobal(ctx, 1)
	require.True(t, ok)

	mr.FastForward(21 * time.Second)
	_, ok = c.GetGlobal(ctx, 1)
	require.False(t, ok)
}

func TestTimelinePageCache_InvalidateDropsWholeNamespace(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	c.SetGlobal(ctx, 1, []byte("one"))
	c.SetGlobal(ctx, 2, []byte("two"))

	c.Invalidate(ctx)

	_, ok := c.GetGlobal(ctx, 1)
	require.False(t, ok)
	_, ok = c.GetGlobal(ctx, 2)
	require.False(t, ok)

	// namespace stays writable after the bump
	c.SetGlobal(ctx, 1, []byte("fresh"))
	data, ok := c.GetGlobal(ctx, 1)
	require.True(t, ok)
	require.Equal(t, "fresh", string(data))
}

func TestTimelinePageCache_DegradesWhenRedisDown(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	mr.Close()

	// every operation is a silent miss / no-op, never an error
	_, ok := c.GetGlobal(ctx, 1)
	require.False(t, ok)
	c.SetGlobal(ctx, 1, []byte("x"))
	c.Invalidate(ctx)
}
