package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := &Client{
		Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}

	return client, mr
}

type funnel struct {
	New int `json:"new"`
	Won int `json:"won"`
}

func TestClient_SetGetJSON(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.SetJSON(ctx, "dashboard:funnel:occhiale", funnel{New: 4, Won: 1}, time.Minute)
	require.NoError(t, err)

	var got funnel
	require.NoError(t, client.GetJSON(ctx, "dashboard:funnel:occhiale", &got))
	assert.Equal(t, funnel{New: 4, Won: 1}, got)

	ttl, err := client.TTL(ctx, "dashboard:funnel:occhiale")
	require.NoError(t, err)
	assert.True(t, ttl > 0 && ttl <= time.Minute)
}

func TestClient_GetJSON_Miss(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	var got funnel
	err := client.GetJSON(context.Background(), "missing", &got)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestClient_GetJSON_ExpiresWithTime(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()
	require.NoError(t, client.SetJSON(ctx, "k", funnel{New: 1}, time.Minute))

	mr.FastForward(2 * time.Minute)

	var got funnel
	assert.ErrorIs(t, client.GetJSON(ctx, "k", &got), ErrMiss)
}

func TestClient_DeletePattern(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()
	for _, k := range []string{"dashboard:a", "dashboard:b", "other:c"} {
		require.NoError(t, client.SetJSON(ctx, k, 1, time.Hour))
	}

	require.NoError(t, client.DeletePattern(ctx, "dashboard:*"))

	assert.False(t, mr.Exists("dashboard:a"))
	assert.False(t, mr.Exists("dashboard:b"))
	assert.True(t, mr.Exists("other:c"))

	require.NoError(t, client.Delete(ctx, "other:c"))
	assert.False(t, mr.Exists("other:c"))
}

func TestClient_Acquire(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()
	ctx := context.Background()

	ok, err := client.Acquire(ctx, "job:scraper", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.Acquire(ctx, "job:scraper", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, client.Delete(ctx, "job:scraper"))
	ok, err = client.Acquire(ctx, "job:scraper", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}
