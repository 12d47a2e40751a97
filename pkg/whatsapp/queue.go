package whatsapp

import (
	"context"
	"sync"
	"time"

	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// DefaultQueueDelay is the pause between two queued sends.
const DefaultQueueDelay = 3 * time.Second

type job struct {
	ctx     context.Context
	phone   string
	content string
	media   *Media
	line    product.Line
	done    chan bool
}

// Queue serializes outbound messages through a single worker with a fixed
// delay between sends. Jobs are processed in FIFO order.
type Queue struct {
	next  Sender
	delay time.Duration
	log   logger.Logger

	jobs      chan job
	closed    chan struct{}
	closeOnce sync.Once
}

// NewQueue creates a queue in front of next. Run must be started for jobs
// to be processed.
func NewQueue(next Sender, delay time.Duration, log logger.Logger) *Queue {
	if delay < 0 {
		delay = DefaultQueueDelay
	}
	return &Queue{
		next:   next,
		delay:  delay,
		log:    log,
		jobs:   make(chan job, 256),
		closed: make(chan struct{}),
	}
}

// Run processes jobs until ctx is canceled or Close is called.
func (q *Queue) Run(ctx context.Context) {
	q.log.Info("📤 WhatsApp queue started", "delay", q.delay)
	for {
		select {
		case <-ctx.Done():
			return
		case <-q.closed:
			return
		case j := <-q.jobs:
			j.done <- q.deliver(j)
			if q.delay > 0 {
				select {
				case <-ctx.Done():
					return
				case <-q.closed:
					return
				case <-time.After(q.delay):
				}
			}
		}
	}
}

func (q *Queue) deliver(j job) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			q.log.Error("Panic while sending WhatsApp message", "phone", j.phone, "panic", r)
			ok = false
		}
	}()

	if j.ctx.Err() != nil {
		return false
	}
	if j.media != nil {
		if ms, isMedia := q.next.(MediaSender); isMedia {
			return ms.SendMedia(j.ctx, j.phone, *j.media, j.line)
		}
		return q.next.Send(j.ctx, j.phone, j.media.Caption+"\n"+j.media.URL, j.line)
	}
	return q.next.Send(j.ctx, j.phone, j.content, j.line)
}

// Close stops the worker. Pending jobs report false.
func (q *Queue) Close() {
	q.closeOnce.Do(func() { close(q.closed) })
}

// Send implements Sender. It blocks until the worker has processed the
// message and returns its delivery result.
func (q *Queue) Send(ctx context.Context, to, content string, line product.Line) bool {
	return q.submit(job{ctx: ctx, phone: to, content: content, line: line})
}

// SendMedia implements MediaSender.
func (q *Queue) SendMedia(ctx context.Context, to string, media Media, line product.Line) bool {
	return q.submit(job{ctx: ctx, phone: to, media: &media, line: line})
}

func (q *Queue) submit(j job) bool {
	j.done = make(chan bool, 1)
	select {
	case <-q.closed:
		return false
	case <-j.ctx.Done():
		return false
	case q.jobs <- j:
	}

	select {
	case ok := <-j.done:
		return ok
	case <-j.ctx.Done():
		return false
	case <-q.closed:
		return false
	}
}
