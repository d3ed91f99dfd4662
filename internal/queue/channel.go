package queue

import "sync"

// ChannelQueue wraps a buffered channel as a Queue.
//
// This is the standard library approach. Enqueue is a blocking send,
// MarkComplete closes the channel, and a drain performs one blocking
// receive followed by non-blocking receives until the batch is full or
// the channel is momentarily empty.
//
// Unlike BoundedQueue, a batch is not taken under one critical section:
// concurrent drains may interleave, so a batch is FIFO but not necessarily
// a contiguous run of the enqueued sequence.
type ChannelQueue[T any] struct {
	ch   chan T
	once sync.Once
}

// NewChannel creates a ChannelQueue with the specified buffer size.
func NewChannel[T any](size int) *ChannelQueue[T] {
	if size < 1 {
		panic("queue: ChannelQueue size must be positive")
	}
	return &ChannelQueue[T]{
		ch: make(chan T, size),
	}
}

// Enqueue sends v, blocking while the buffer is full.
// Sending after MarkComplete panics (send on closed channel).
func (q *ChannelQueue[T]) Enqueue(v T) {
	q.ch <- v
}

// DrainInto receives up to len(dst) items into dst.
func (q *ChannelQueue[T]) DrainInto(dst []T) (int, bool) {
	if len(dst) == 0 {
		panic("queue: DrainInto with empty destination")
	}

	v, ok := <-q.ch
	if !ok {
		return 0, true
	}
	dst[0] = v
	n := 1

	for n < len(dst) {
		select {
		case v, ok := <-q.ch:
			if !ok {
				return n, false
			}
			dst[n] = v
			n++
		default:
			return n, false
		}
	}
	return n, false
}

// DrainBatch removes up to max items and returns them as a new slice.
func (q *ChannelQueue[T]) DrainBatch(max int) ([]T, bool) {
	return drainBatch[T](q, max)
}

// MarkComplete closes the channel. Safe to call multiple times.
func (q *ChannelQueue[T]) MarkComplete() {
	q.once.Do(func() { close(q.ch) })
}

// Len returns the current number of buffered items.
func (q *ChannelQueue[T]) Len() int {
	return len(q.ch)
}

// Cap returns the capacity of the queue.
func (q *ChannelQueue[T]) Cap() int {
	return cap(q.ch)
}
