package ratelimit

import (
	"context"
	"time"
)

// Defaults match the WhatsApp provider's tolerance.
const (
	DefaultMaxPerHour  = 100
	DefaultMinInterval = 3 * time.Second
	DefaultWindow      = time.Hour
)

// Config tunes the two guards.
type Config struct {
	MaxPerHour  int
	MinInterval time.Duration
	Window      time.Duration
}

// Result is the outcome of an hourly-cap check.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Limiter applies the hourly cap and the minimum interval over a Store.
type Limiter struct {
	store Store
	cfg   Config
	now   func() time.Time
}

// New creates a limiter. Zero config values take the defaults.
func New(store Store, cfg Config) *Limiter {
	if cfg.MaxPerHour <= 0 {
		cfg.MaxPerHour = DefaultMaxPerHour
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = DefaultMinInterval
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	return &Limiter{store: store, cfg: cfg, now: time.Now}
}

// WithClock replaces the time source. Used by tests.
func (l *Limiter) WithClock(now func() time.Time) *Limiter {
	l.now = now
	return l
}

// Config returns the effective configuration.
func (l *Limiter) Config() Config {
	return l.cfg
}

// Allow consumes one hourly slot for id. On a store error the request is
// allowed and the error is returned for logging.
func (l *Limiter) Allow(ctx context.Context, id string) (Result, error) {
	now := l.now()
	w, ok, err := l.store.Take(ctx, id, now, l.cfg.Window, l.cfg.MaxPerHour)
	if err != nil {
		return Result{Allowed: true, Remaining: l.cfg.MaxPerHour, ResetAt: now.Add(l.cfg.Window)}, err
	}
	return Result{
		Allowed:   ok,
		Remaining: max(0, l.cfg.MaxPerHour-w.Count),
		ResetAt:   w.ResetAt,
	}, nil
}

// CheckInterval records a send to phone unless the previous one was less
// than MinInterval ago. A rejected send is not queued; retryAfter tells the
// caller how long to wait. Store errors allow the send.
func (l *Limiter) CheckInterval(ctx context.Context, phone string) (bool, time.Duration, error) {
	ok, retryAfter, err := l.store.MarkSend(ctx, phone, l.now(), l.cfg.MinInterval)
	if err != nil {
		return true, 0, err
	}
	return ok, retryAfter, nil
}

// Prune drops expired state.
func (l *Limiter) Prune(ctx context.Context) (int, error) {
	return l.store.Prune(ctx, l.now())
}
