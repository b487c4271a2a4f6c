package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time         { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCache(ttl time.Duration) (*Cache[int], *clock) {
	clk := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New[int](ttl, 0)
	c.now = clk.now
	return c, clk
}

func TestSetGetExpire(t *testing.T) {
	c, clk := newTestCache(time.Minute)

	c.Set("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	clk.advance(2 * time.Minute)
	_, ok = c.Get("a")
	require.False(t, ok)
	require.Equal(t, 1, c.Size())

	c.DeleteExpired()
	require.Equal(t, 0, c.Size())
}

func TestGetOrCreateSlidesExpiration(t *testing.T) {
	c, clk := newTestCache(time.Minute)
	calls := 0
	create := func() int { calls++; return calls }

	require.Equal(t, 1, c.GetOrCreate("k", create))
	clk.advance(50 * time.Second)
	require.Equal(t, 1, c.GetOrCreate("k", create))
	clk.advance(50 * time.Second)
	require.Equal(t, 1, c.GetOrCreate("k", create))

	clk.advance(2 * time.Minute)
	require.Equal(t, 2, c.GetOrCreate("k", create))
}

func TestDelete(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	c.Set("a", 1)
	c.Delete("a")
	_, ok := c.Get("a")
	require.False(t, ok)
}

func TestCleanupLoopStopsOnClose(t *testing.T) {
	c := New[string](time.Millisecond, 5*time.Millisecond)
	c.Set("x", "y")
	require.Eventually(t, func() bool { return c.Size() == 0 }, time.Second, 5*time.Millisecond)
	c.Close()
	c.Close()
}
