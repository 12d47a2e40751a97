package whatsapp

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu    sync.Mutex
	sent  []string
	media []Media
	at    []time.Time
	fail  bool
}

func (r *recordingSender) Send(_ context.Context, phone, content string, _ product.Line) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, phone+":"+content)
	r.at = append(r.at, time.Now())
	return !r.fail
}

func (r *recordingSender) SendMedia(_ context.Context, phone string, m Media, _ product.Line) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.media = append(r.media, m)
	return !r.fail
}

func TestQueue_FIFOWithDelay(t *testing.T) {
	rec := &recordingSender{}
	q := NewQueue(rec, 20*time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	for _, msg := range []string{"a", "b", "c"} {
		assert.True(t, q.Send(ctx, "551100000000", msg, product.Ekkle))
	}

	require.Len(t, rec.sent, 3)
	assert.Equal(t, []string{"551100000000:a", "551100000000:b", "551100000000:c"}, rec.sent)
	assert.GreaterOrEqual(t, rec.at[2].Sub(rec.at[1]), 20*time.Millisecond)
}

func TestQueue_ReportsFailureAndMedia(t *testing.T) {
	rec := &recordingSender{fail: true}
	q := NewQueue(rec, 0, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	assert.False(t, q.Send(ctx, "551100000000", "x", product.Occhiale))
	assert.False(t, q.SendMedia(ctx, "551100000000", Media{Kind: "image", URL: "u"}, product.Occhiale))
	assert.Len(t, rec.media, 1)
}

func TestQueue_ClosedRejects(t *testing.T) {
	q := NewQueue(&recordingSender{}, 0, logger.Nop())
	q.Close()
	q.Close()
	assert.False(t, q.Send(context.Background(), "551100000000", "x", product.Occhiale))
}

func TestPacedSender_DefersOnce(t *testing.T) {
	rec := &recordingSender{}
	limiter := ratelimit.New(ratelimit.NewMemoryStore(time.Hour), ratelimit.Config{MinInterval: time.Minute})
	p := NewPacedSender(rec, limiter, logger.Nop(), nil)

	var waited []time.Duration
	p.sleep = func(_ context.Context, d time.Duration) error {
		waited = append(waited, d)
		return nil
	}

	ctx := context.Background()
	assert.True(t, p.Send(ctx, "5511999990000", "first", product.Occhiale))
	assert.True(t, p.Send(ctx, "5511999990000", "second", product.Occhiale))
	assert.True(t, p.Send(ctx, "5511888880000", "other phone", product.Occhiale))

	assert.Len(t, rec.sent, 3)
	require.Len(t, waited, 1, "only the second message to the same phone waits")
	assert.Greater(t, waited[0], 50*time.Second)
}

func TestPacedSender_CanceledWhileWaiting(t *testing.T) {
	rec := &recordingSender{}
	limiter := ratelimit.New(ratelimit.NewMemoryStore(time.Hour), ratelimit.Config{MinInterval: time.Minute})
	p := NewPacedSender(rec, limiter, logger.Nop(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	assert.True(t, p.Send(ctx, "5511999990000", "first", product.Occhiale))
	cancel()
	assert.False(t, p.Send(ctx, "5511999990000", "second", product.Occhiale))
	assert.Len(t, rec.sent, 1)
}
