package ratelimit

import (
	"context"
	"sync"
	"time"
)

const (
	defaultMaxWindows   = 10000
	defaultMaxLastSends = 5000
)

// MemoryStore is a process-local Store. Pruning is opportunistic: it runs on
// insert once a map grows past its threshold.
type MemoryStore struct {
	mu            sync.Mutex
	windows       map[string]*Window
	lastSend      map[string]time.Time
	maxWindows    int
	maxLastSends  int
	sendRetention time.Duration
}

// NewMemoryStore creates an empty store. sendRetention is how long a
// last-send timestamp is kept once the map is over its threshold.
func NewMemoryStore(sendRetention time.Duration) *MemoryStore {
	if sendRetention <= 0 {
		sendRetention = time.Hour
	}
	return &MemoryStore{
		windows:       make(map[string]*Window),
		lastSend:      make(map[string]time.Time),
		maxWindows:    defaultMaxWindows,
		maxLastSends:  defaultMaxLastSends,
		sendRetention: sendRetention,
	}
}

// Take implements Store.
func (s *MemoryStore) Take(_ context.Context, key string, now time.Time, window time.Duration, max int) (Window, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.windows) > s.maxWindows {
		s.pruneWindows(now)
	}

	w, ok := s.windows[key]
	if !ok || w.ResetAt.Before(now) {
		w = &Window{Count: 1, ResetAt: now.Add(window)}
		s.windows[key] = w
		return *w, true, nil
	}
	if w.Count >= max {
		return *w, false, nil
	}
	w.Count++
	return *w, true, nil
}

// MarkSend implements Store.
func (s *MemoryStore) MarkSend(_ context.Context, key string, now time.Time, interval time.Duration) (bool, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.lastSend[key]; ok {
		if elapsed := now.Sub(last); elapsed < interval {
			return false, interval - elapsed, nil
		}
	}

	s.lastSend[key] = now
	if len(s.lastSend) > s.maxLastSends {
		s.pruneSends(now)
	}
	return true, 0, nil
}

// Prune implements Store.
func (s *MemoryStore) Prune(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pruneWindows(now) + s.pruneSends(now), nil
}

// Len implements Store.
func (s *MemoryStore) Len(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows) + len(s.lastSend), nil
}

func (s *MemoryStore) pruneWindows(now time.Time) int {
	removed := 0
	for k, w := range s.windows {
		if w.ResetAt.Before(now) {
			delete(s.windows, k)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) pruneSends(now time.Time) int {
	removed := 0
	for k, last := range s.lastSend {
		if now.Sub(last) > s.sendRetention {
			delete(s.lastSend, k)
			removed++
		}
	}
	return removed
}
