package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)}
}

func TestLimiter_HourlyCap_Memory(t *testing.T) {
	clock := newClock()
	l := New(NewMemoryStore(time.Hour), Config{MaxPerHour: 5}).WithClock(clock.Now)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		res, err := l.Allow(ctx, "5511999990000")
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d", i)
		assert.Equal(t, 5-i, res.Remaining)
	}

	res, err := l.Allow(ctx, "5511999990000")
	require.NoError(t, err)
	assert.False(t, res.Allowed, "the N+1th request is denied")
	assert.Equal(t, 0, res.Remaining)

	// other identifiers are independent
	other, _ := l.Allow(ctx, "5511888880000")
	assert.True(t, other.Allowed)

	clock.Advance(time.Hour + time.Second)
	for i := 1; i <= 5; i++ {
		res, _ := l.Allow(ctx, "5511999990000")
		assert.True(t, res.Allowed, "after reset, request %d", i)
	}
	res, _ = l.Allow(ctx, "5511999990000")
	assert.False(t, res.Allowed)
}

func TestLimiter_MinInterval_Memory(t *testing.T) {
	clock := newClock()
	l := New(NewMemoryStore(time.Hour), Config{MinInterval: 3 * time.Second}).WithClock(clock.Now)
	ctx := context.Background()

	ok, _, err := l.CheckInterval(ctx, "5511999990000")
	require.NoError(t, err)
	assert.True(t, ok)

	clock.Advance(time.Second)
	ok, wait, err := l.CheckInterval(ctx, "5511999990000")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2*time.Second, wait)

	clock.Advance(2 * time.Second)
	ok, _, _ = l.CheckInterval(ctx, "5511999990000")
	assert.True(t, ok, "spaced by the full interval")
}

func TestMemoryStore_OpportunisticPrune(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	store.maxWindows = 3
	ctx := context.Background()
	now := newClock().Now()

	for i := 0; i < 4; i++ {
		_, _, err := store.Take(ctx, fmt.Sprintf("id-%d", i), now, time.Minute, 10)
		require.NoError(t, err)
	}

	later := now.Add(2 * time.Minute)
	_, _, err := store.Take(ctx, "fresh", later, time.Minute, 10)
	require.NoError(t, err)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "expired windows are dropped on insert past the threshold")
}

func TestMemoryStore_Prune(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()
	now := newClock().Now()

	_, _, _ = store.Take(ctx, "a", now, time.Minute, 10)
	_, _, _ = store.MarkSend(ctx, "a", now, time.Second)

	removed, err := store.Prune(ctx, now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
}

func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return NewRedisStore(rdb, "test:"), mr
}

func TestLimiter_HourlyCap_Redis(t *testing.T) {
	store, mr := setupRedisStore(t)
	l := New(store, Config{MaxPerHour: 3})
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		res, err := l.Allow(ctx, "5511999990000")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 3-i, res.Remaining)
	}
	res, err := l.Allow(ctx, "5511999990000")
	require.NoError(t, err)
	assert.False(t, res.Allowed)

	mr.FastForward(time.Hour + time.Second)

	for i := 1; i <= 3; i++ {
		res, err := l.Allow(ctx, "5511999990000")
		require.NoError(t, err)
		assert.True(t, res.Allowed, "after expiry, request %d", i)
	}
	res, _ = l.Allow(ctx, "5511999990000")
	assert.False(t, res.Allowed)
}

func TestLimiter_MinInterval_Redis(t *testing.T) {
	store, mr := setupRedisStore(t)
	l := New(store, Config{MinInterval: 3 * time.Second})
	ctx := context.Background()

	ok, _, err := l.CheckInterval(ctx, "5511999990000")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, wait, err := l.CheckInterval(ctx, "5511999990000")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Greater(t, wait, time.Duration(0))

	mr.FastForward(3 * time.Second)
	ok, _, err = l.CheckInterval(ctx, "5511999990000")
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

type failingStore struct{}

func (failingStore) Take(context.Context, string, time.Time, time.Duration, int) (Window, bool, error) {
	return Window{}, false, errors.New("down")
}
func (failingStore) MarkSend(context.Context, string, time.Time, time.Duration) (bool, time.Duration, error) {
	return false, 0, errors.New("down")
}
func (failingStore) Prune(context.Context, time.Time) (int, error) { return 0, nil }
func (failingStore) Len(context.Context) (int, error)              { return 0, nil }

func TestLimiter_StoreErrorsFailOpen(t *testing.T) {
	l := New(failingStore{}, Config{})
	ctx := context.Background()

	res, err := l.Allow(ctx, "x")
	assert.Error(t, err)
	assert.True(t, res.Allowed)

	ok, _, err := l.CheckInterval(ctx, "x")
	assert.Error(t, err)
	assert.True(t, ok)
}
