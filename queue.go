package blurplehook

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Pacing for the drain loop: the remote service allows roughly this many
// webhook executions per interval before rate limiting kicks in.
const (
	defaultQueueBatchSize = 2
	defaultQueueInterval  = 2 * time.Second
)

// WebhookQueue paces webhook delivery to stay under the endpoint's rate
// limit. Webhooks are enqueued in FIFO order and drained in small batches by a
// single background goroutine; a failed send is logged and dropped, never
// retried.
type WebhookQueue struct {
	mu       sync.Mutex
	webhooks []*Webhook

	sender    *Sender
	logger    zerolog.Logger
	batchSize int
	interval  time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// QueueOption configures a WebhookQueue
type QueueOption func(*WebhookQueue)

// WithQueueLogger attaches a logger to the drain loop
func WithQueueLogger(logger zerolog.Logger) QueueOption {
	return func(q *WebhookQueue) {
		q.logger = logger
	}
}

// WithQueuePacing overrides how many webhooks are drained per interval.
// Loosening this past the defaults risks rate limiting by the remote service.
func WithQueuePacing(batchSize int, interval time.Duration) QueueOption {
	return func(q *WebhookQueue) {
		if batchSize > 0 {
			q.batchSize = batchSize
		}
		if interval > 0 {
			q.interval = interval
		}
	}
}

// NewWebhookQueue creates a queue that delivers through the given sender. A
// nil sender uses the package default.
func NewWebhookQueue(sender *Sender, opts ...QueueOption) *WebhookQueue {
	if sender == nil {
		sender = defaultSender()
	}

	q := &WebhookQueue{
		sender:    sender,
		logger:    zerolog.Nop(),
		batchSize: defaultQueueBatchSize,
		interval:  defaultQueueInterval,
	}

	for _, opt := range opts {
		opt(q)
	}

	q.logger = q.logger.With().Str("component", "WebhookQueue").Logger()
	return q
}

// Enqueue adds one webhook to the back of the queue
func (q *WebhookQueue) Enqueue(webhook *Webhook) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.webhooks = append(q.webhooks, webhook)
}

// EnqueueMulti adds multiple webhooks, preserving input order
func (q *WebhookQueue) EnqueueMulti(webhooks []*Webhook) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.webhooks = append(q.webhooks, webhooks...)
}

// Len returns the number of webhooks waiting to be sent
func (q *WebhookQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.webhooks)
}

// Start launches the drain loop. It drains one batch immediately, then one
// batch per interval until the context is cancelled or Stop is called.
// Start must be called at most once.
func (q *WebhookQueue) Start(ctx context.Context) {
	ctx, q.cancel = context.WithCancel(ctx)
	q.done = make(chan struct{})

	go q.drainLoop(ctx)
}

// Stop cancels the drain loop and waits for it to exit. Webhooks still queued
// remain queued.
func (q *WebhookQueue) Stop() {
	if q.cancel == nil {
		return
	}
	q.cancel()
	<-q.done
}

func (q *WebhookQueue) drainLoop(ctx context.Context) {
	defer close(q.done)

	ticker := time.NewTicker(q.interval)
	defer ticker.Stop()

	for {
		q.drainBatch(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// drainBatch pops up to batchSize webhooks and sends them sequentially
func (q *WebhookQueue) drainBatch(ctx context.Context) {
	q.mu.Lock()
	n := q.batchSize
	if n > len(q.webhooks) {
		n = len(q.webhooks)
	}
	batch := q.webhooks[:n]
	q.webhooks = q.webhooks[n:]
	q.mu.Unlock()

	for _, webhook := range batch {
		if err := q.sender.Send(ctx, webhook); err != nil {
			q.logger.Error().
				Err(err).
				Str("webhook_url", webhook.URL()).
				Msg("Queued webhook delivery failed, dropping")
		}
	}
}
