package whatsapp

import (
	"context"
	"time"

	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/metrics"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/ratelimit"
)

// PacedSender enforces the per-phone minimum interval before delegating.
// A send that arrives too early is deferred once by the reported wait.
type PacedSender struct {
	next    Sender
	limiter *ratelimit.Limiter
	log     logger.Logger
	metrics *metrics.Metrics
	sleep   func(ctx context.Context, d time.Duration) error
}

// NewPacedSender wraps next with the limiter's interval guard.
func NewPacedSender(next Sender, limiter *ratelimit.Limiter, log logger.Logger, m *metrics.Metrics) *PacedSender {
	return &PacedSender{next: next, limiter: limiter, log: log, metrics: m, sleep: sleepCtx}
}

// Send implements Sender.
func (p *PacedSender) Send(ctx context.Context, to, content string, line product.Line) bool {
	if err := p.wait(ctx, to); err != nil {
		return false
	}
	return p.next.Send(ctx, to, content, line)
}

// SendMedia implements MediaSender when the wrapped sender supports media.
func (p *PacedSender) SendMedia(ctx context.Context, to string, media Media, line product.Line) bool {
	ms, ok := p.next.(MediaSender)
	if !ok {
		return p.Send(ctx, to, media.Caption+"\n"+media.URL, line)
	}
	if err := p.wait(ctx, to); err != nil {
		return false
	}
	return ms.SendMedia(ctx, to, media, line)
}

func (p *PacedSender) wait(ctx context.Context, to string) error {
	ok, retryAfter, err := p.limiter.CheckInterval(ctx, to)
	if err != nil {
		p.log.Warn("Rate limiter unavailable, sending anyway", "phone", to, "error", err)
	}
	if ok {
		return nil
	}

	p.metrics.RecordRateLimited("outbound")
	p.log.Debug("Deferring WhatsApp send", "phone", to, "wait", retryAfter)
	if err := p.sleep(ctx, retryAfter); err != nil {
		return err
	}
	// Deferred once; the retry result is recorded but does not block again.
	_, _, _ = p.limiter.CheckInterval(ctx, to)
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
