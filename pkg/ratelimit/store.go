// Package ratelimit bounds outbound and inbound WhatsApp traffic with an
// hourly fixed-window cap and a per-phone minimum interval. State lives
// behind the Store interface so a process-local map can be swapped for Redis
// when the service runs on more than one instance.
package ratelimit

import (
	"context"
	"time"
)

// Window is the state of one fixed window.
type Window struct {
	Count   int
	ResetAt time.Time
}

// Store keeps limiter state.
type Store interface {
	// Take consumes one slot of the window at key unless max slots are
	// already used. An expired or missing window is reopened at now.
	Take(ctx context.Context, key string, now time.Time, window time.Duration, max int) (Window, bool, error)

	// MarkSend records a send at now unless the previous one is less than
	// interval old, in which case it reports how long to wait.
	MarkSend(ctx context.Context, key string, now time.Time, interval time.Duration) (bool, time.Duration, error)

	// Prune drops expired entries and returns how many were removed.
	Prune(ctx context.Context, now time.Time) (int, error)

	// Len is the number of live entries.
	Len(ctx context.Context) (int, error)
}
