package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// takeScript opens or consumes a fixed window atomically.
// Returns {allowed, count, pttl}.
var takeScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 then
  redis.call('SET', KEYS[1], 1, 'PX', ARGV[2])
  return {1, 1, tonumber(ARGV[2])}
end
if current >= tonumber(ARGV[1]) then
  return {0, current, ttl}
end
current = redis.call('INCR', KEYS[1])
return {1, current, ttl}
`)

// RedisStore shares limiter state between instances. Keys expire on their
// own, so Prune has nothing to do.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStore creates a store using keys under prefix.
func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "ratelimit:"
	}
	return &RedisStore{rdb: rdb, prefix: prefix}
}

// Take implements Store.
func (s *RedisStore) Take(ctx context.Context, key string, now time.Time, window time.Duration, max int) (Window, bool, error) {
	res, err := takeScript.Run(ctx, s.rdb, []string{s.prefix + "window:" + key}, max, window.Milliseconds()).Int64Slice()
	if err != nil {
		return Window{}, false, fmt.Errorf("rate limit window: %w", err)
	}
	if len(res) != 3 {
		return Window{}, false, fmt.Errorf("rate limit window: unexpected reply %v", res)
	}

	w := Window{
		Count:   int(res[1]),
		ResetAt: now.Add(time.Duration(res[2]) * time.Millisecond),
	}
	return w, res[0] == 1, nil
}

// MarkSend implements Store.
func (s *RedisStore) MarkSend(ctx context.Context, key string, now time.Time, interval time.Duration) (bool, time.Duration, error) {
	k := s.prefix + "last:" + key
	ok, err := s.rdb.SetNX(ctx, k, now.UnixMilli(), interval).Result()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit interval: %w", err)
	}
	if ok {
		return true, 0, nil
	}

	ttl, err := s.rdb.PTTL(ctx, k).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, 0, fmt.Errorf("rate limit interval ttl: %w", err)
	}
	if ttl < 0 {
		ttl = interval
	}
	return false, ttl, nil
}

// Prune implements Store.
func (s *RedisStore) Prune(context.Context, time.Time) (int, error) {
	return 0, nil
}

// Len implements Store.
func (s *RedisStore) Len(ctx context.Context) (int, error) {
	var (
		cursor uint64
		total  int
	)
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, s.prefix+"*", 200).Result()
		if err != nil {
			return 0, err
		}
		total += len(keys)
		if next == 0 {
			return total, nil
		}
		cursor = next
	}
}
