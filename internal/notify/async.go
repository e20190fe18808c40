package notify

import (
	"context"
	"sync"
	"time"

	"cloudstay/internal/logger"
)

type delivery struct {
	ctx   context.Context
	event Event
	to    Recipient
}

// Async queues events and delivers them from a background worker so a slow
// provider never holds up the request that emitted them.
type Async struct {
	next    Notifier
	queue   chan delivery
	timeout time.Duration
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewAsync starts a worker delivering through next with a queue of size buffer.
func NewAsync(next Notifier, buffer int) *Async {
	a := &Async{
		next:    next,
		queue:   make(chan delivery, buffer),
		timeout: 15 * time.Second,
	}
	a.wg.Add(1)
	go a.worker()
	return a
}

// Notify enqueues the event. When the queue is full or closed the event is
// dropped and logged.
func (a *Async) Notify(ctx context.Context, event Event, to Recipient) error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		logger.WarnContext(ctx, "notification queue closed, dropping event",
			"event", string(event.Type),
			"to", to.Email,
		)
		return nil
	}

	d := delivery{ctx: context.WithoutCancel(ctx), event: event, to: to}
	select {
	case a.queue <- d:
	default:
		logger.WarnContext(ctx, "notification queue full, dropping event",
			"event", string(event.Type),
			"to", to.Email,
		)
	}
	return nil
}

func (a *Async) worker() {
	defer a.wg.Done()
	for d := range a.queue {
		ctx, cancel := context.WithTimeout(d.ctx, a.timeout)
		Send(ctx, a.next, d.event, d.to)
		cancel()
	}
}

// Close stops accepting events and waits for queued ones to be delivered.
func (a *Async) Close() {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()
	a.wg.Wait()
}
