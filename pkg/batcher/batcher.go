// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once the batcher no longer accepts items.
var ErrStopped = errors.New("batcher stopped")

// Option customizes a Batcher.
type Option func(*options)

type options struct {
	limiter ratelimit.Limiter
	buffer  int
}

// WithLimiter paces flushes with l. Flushes are unlimited by default.
func WithLimiter(l ratelimit.Limiter) Option {
	return func(o *options) {
		o.limiter = l
	}
}

// WithBuffer sets the capacity of the intake channel. Defaults to twice the flush size.
func WithBuffer(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.buffer = n
		}
	}
}

// Batcher buffers items and flushes them either by size or interval.
// Items accepted by Add are always flushed, including after Stop or cancellation.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	mu      sync.RWMutex
	stopped bool

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, flushSize int, flushInterval time.Duration, opts ...Option) *Batcher[T] {
	if flushSize < 1 {
		flushSize = 1
	}
	if flushInterval <= 0 {
		flushInterval = time.Second
	}
	o := options{limiter: ratelimit.NewUnlimited(), buffer: flushSize * 2}
	for _, opt := range opts {
		opt(&o)
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		itemsCh:       make(chan T, o.buffer),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            o.limiter,
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop stops the background flushing loop and waits for the final flush.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.stopped {
		return ErrStopped
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		err := b.flushCallback(ctx, buf)
		if err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

loop:
	for {
		select {
		case <-ctx.Done():
			break loop

		case <-b.stop:
			break loop

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}

	b.drain(&buf)
	flush(context.WithoutCancel(ctx))
}

// drain rejects further Adds and moves everything already accepted into buf.
// The intake keeps draining while waiting for the lock so blocked Adds can finish.
func (b *Batcher[T]) drain(buf *[]T) {
	locked := make(chan struct{})
	go func() {
		b.mu.Lock()
		b.stopped = true
		b.mu.Unlock()
		close(locked)
	}()

	for {
		select {
		case item := <-b.itemsCh:
			*buf = append(*buf, item)
		case <-locked:
			for {
				select {
				case item := <-b.itemsCh:
					*buf = append(*buf, item)
				default:
					return
				}
			}
		}
	}
}
