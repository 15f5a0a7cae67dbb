package service

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/1234-ad/intelligent-content-orchestrator/internal/logger"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/metrics"
)

const (
	// DefaultEffectTimeout bounds a single side-effect attempt.
	DefaultEffectTimeout = 10 * time.Second

	// DefaultRetryBudget bounds the total time spent retrying one effect.
	DefaultRetryBudget = 30 * time.Second
)

// DispatcherConfig configures the side-effect worker pool.
type DispatcherConfig struct {
	Workers     int
	QueueSize   int
	Timeout     time.Duration
	RetryBudget time.Duration
}

// effectTask is one queued side effect.
type effectTask struct {
	kind      string
	contentID string
	fn        func(context.Context) error
	enqueued  time.Time
}

// Dispatcher runs side effects on a bounded worker pool. Effects are
// best-effort: a full queue drops the task and failures after the retry
// budget are logged, never surfaced to the caller.
type Dispatcher struct {
	timeout     time.Duration
	retryBudget time.Duration

	queue    chan effectTask
	stopChan chan struct{}
	wg       sync.WaitGroup
	closed   bool
	mu       sync.RWMutex
}

// NewDispatcher creates a Dispatcher and starts its workers.
func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.QueueSize < 1 {
		cfg.QueueSize = cfg.Workers * 2
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultEffectTimeout
	}
	if cfg.RetryBudget <= 0 {
		cfg.RetryBudget = DefaultRetryBudget
	}

	d := &Dispatcher{
		timeout:     cfg.Timeout,
		retryBudget: cfg.RetryBudget,
		queue:       make(chan effectTask, cfg.QueueSize),
		stopChan:    make(chan struct{}),
	}

	for i := 0; i < cfg.Workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}

	return d
}

// Dispatch queues a side effect. When the queue is full the task is dropped
// and counted; the primary write it follows has already succeeded.
func (d *Dispatcher) Dispatch(kind, contentID string, fn func(context.Context) error) {
	// The read lock is held across the send: Close flips closed under the
	// write lock before closing the queue, so a send in progress can never
	// race a channel close.
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		metrics.SideEffectsDropped.WithLabelValues(kind).Inc()
		return
	}

	task := effectTask{kind: kind, contentID: contentID, fn: fn, enqueued: time.Now()}

	select {
	case d.queue <- task:
		metrics.SideEffectQueueDepth.Inc()
	default:
		metrics.SideEffectsDropped.WithLabelValues(kind).Inc()
		logger.Warn("Side-effect queue full, dropping task",
			"kind", kind,
			"content_id", contentID,
		)
	}
}

// Close stops accepting tasks and waits for in-flight workers to finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	close(d.stopChan)
	close(d.queue)
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for {
		select {
		case task, ok := <-d.queue:
			if !ok {
				return
			}
			metrics.SideEffectQueueDepth.Dec()
			d.run(task)
		case <-d.stopChan:
			return
		}
	}
}

// run executes one task, retrying transient failures with exponential
// backoff until the retry budget is spent.
func (d *Dispatcher) run(task effectTask) {
	start := time.Now()

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = d.retryBudget

	err := backoff.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		return task.fn(ctx)
	}, policy)

	elapsed := time.Since(start)
	if err != nil {
		metrics.ObserveSideEffect(task.kind, "failure", elapsed)
		logger.Error("Side effect failed after retries",
			"kind", task.kind,
			"content_id", task.contentID,
			"elapsed", elapsed.Round(time.Millisecond).String(),
			"error", err,
		)
		return
	}

	metrics.ObserveSideEffect(task.kind, "success", elapsed)
	logger.Debug("Side effect completed",
		"kind", task.kind,
		"content_id", task.contentID,
		"elapsed", elapsed.Round(time.Millisecond).String(),
	)
}
