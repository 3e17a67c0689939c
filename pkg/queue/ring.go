package queue

import (
	"github.com/huynhanx03/go-queue/pkg/utils"
)

const defaultRingCapacity = 16

var _ Queue[int] = (*Ring[int])(nil)

// Ring is an unbounded FIFO queue over a circular slice. The backing array
// is kept at a power-of-two length so index wrapping is a mask, and it
// doubles when full, giving amortized O(1) Enqueue and O(1) Dequeue.
//
// Not safe for concurrent use; wrap it in Synced when a single instance is
// shared across goroutines.
type Ring[T any] struct {
	buf  []T
	head int // index of the front item
	size int
}

// NewRing creates an empty queue. The initial capacity is rounded up to a
// power of two; non-positive values use a small default.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		capacity = defaultRingCapacity
	}
	capacity = utils.CeilToPowerOfTwo(capacity)
	return &Ring[T]{buf: make([]T, capacity)}
}

func (r *Ring[T]) wrap(idx int) int { return idx & (len(r.buf) - 1) }

// Enqueue appends item at the back of the queue. Always succeeds, growing
// the backing array when full.
func (r *Ring[T]) Enqueue(item T) bool {
	if r.size == len(r.buf) {
		r.grow()
	}
	r.buf[r.wrap(r.head+r.size)] = item
	r.size++
	return true
}

// Dequeue removes and returns the front item.
// Returns (zero, false) if the queue is empty, leaving it unchanged.
func (r *Ring[T]) Dequeue() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	item := r.buf[r.head]
	r.buf[r.head] = zero // drop the reference so the backing array can't pin it
	r.head = r.wrap(r.head + 1)
	r.size--
	return item, true
}

// Peek returns the front item without removing it.
// Returns (zero, false) if the queue is empty.
func (r *Ring[T]) Peek() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	return r.buf[r.head], true
}

// Len returns the number of items in the queue.
func (r *Ring[T]) Len() int { return r.size }

// Cap returns the current capacity of the backing array.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// IsEmpty returns true if the queue holds no items.
func (r *Ring[T]) IsEmpty() bool { return r.size == 0 }

// Clear drops all items and releases their slots.
func (r *Ring[T]) Clear() {
	clear(r.buf)
	r.head = 0
	r.size = 0
}

// Clone returns an independent copy of the queue.
func (r *Ring[T]) Clone() *Ring[T] {
	next := &Ring[T]{buf: make([]T, len(r.buf)), head: r.head, size: r.size}
	copy(next.buf, r.buf)
	return next
}

// EnqueueBatch appends multiple items. Returns the count enqueued.
func (r *Ring[T]) EnqueueBatch(items []T) int {
	for _, item := range items {
		r.Enqueue(item)
	}
	return len(items)
}

// DequeueBatch removes multiple items into out. Returns the count dequeued.
func (r *Ring[T]) DequeueBatch(out []T) int {
	count := 0
	for i := range out {
		item, ok := r.Dequeue()
		if !ok {
			break
		}
		out[i] = item
		count++
	}
	return count
}

// grow doubles the backing array and re-linearizes the items at index 0.
func (r *Ring[T]) grow() {
	next := make([]T, len(r.buf)*2)
	n := copy(next, r.buf[r.head:])
	copy(next[n:], r.buf[:r.head])
	r.buf = next
	r.head = 0
}
