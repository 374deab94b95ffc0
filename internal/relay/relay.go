// Package relay provides an ordered hand-off between concurrently running
// event handlers and a single serialized consumer.
//
// Handler invocations run on independent goroutines; letting N of them write
// directly to a shared sink produces interleaved output. A Line fixes that
// hazard with message passing: any number of producers enqueue complete,
// self-contained items, and exactly one consumer drains them strictly in
// enqueue order.
package relay

import (
	"context"
	"errors"
	"sync"
)

// ErrLineClosed is returned by Enqueue after Close has been called.
var ErrLineClosed = errors.New("relay: line is closed")

// DefaultBuffer is the channel capacity used when NewLine is given a
// non-positive buffer size.
const DefaultBuffer = 64

// Line is a multi-producer, single-consumer FIFO. Enqueue is safe to call
// concurrently from any number of goroutines; dequeue order equals enqueue
// order. Items handed to Enqueue are owned by the Line until the consumer
// processes them.
type Line[T any] struct {
	items chan T
	quit  chan struct{}
	once  sync.Once
}

// NewLine creates a Line with the given buffer capacity. A full buffer makes
// Enqueue block, which is the only backpressure this layer applies.
func NewLine[T any](buffer int) *Line[T] {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Line[T]{
		items: make(chan T, buffer),
		quit:  make(chan struct{}),
	}
}

// Enqueue appends one item to the line. It blocks while the buffer is full
// and returns the context error if ctx is done first, or ErrLineClosed if
// the line has been closed.
func (l *Line[T]) Enqueue(ctx context.Context, item T) error {
	select {
	case <-l.quit:
		return ErrLineClosed
	default:
	}

	select {
	case l.items <- item:
		return nil
	case <-l.quit:
		return ErrLineClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the line. Subsequent Enqueue calls fail with ErrLineClosed;
// the consumer drains items already buffered and then returns. Close is
// idempotent.
func (l *Line[T]) Close() {
	l.once.Do(func() { close(l.quit) })
}

// Run is the single consumer loop. It invokes consume once per item, in
// enqueue order, until the context is cancelled or the line is closed and
// drained. Run must not be called from more than one goroutine; a second
// concurrent consumer would break the ordering guarantee.
func (l *Line[T]) Run(ctx context.Context, consume func(T)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case item := <-l.items:
			consume(item)
		case <-l.quit:
			// Drain what was enqueued before the close, then stop.
			for {
				select {
				case item := <-l.items:
					consume(item)
				default:
					return nil
				}
			}
		}
	}
}
