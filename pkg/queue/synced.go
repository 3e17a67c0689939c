package queue

import "sync"

var _ Queue[int] = (*Synced[int])(nil)

// Synced wraps a Queue with a mutex, making a single logical instance safe
// for concurrent use. The queues in this package are single-owner values;
// Synced is the external synchronization for callers that share one.
type Synced[T any] struct {
	mu sync.Mutex
	q  Queue[T]
}

// NewSynced wraps q. The caller must not use q directly afterwards.
func NewSynced[T any](q Queue[T]) *Synced[T] {
	return &Synced[T]{q: q}
}

// Enqueue adds an item to the wrapped queue.
func (s *Synced[T]) Enqueue(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Enqueue(item)
}

// Dequeue removes and returns the front item of the wrapped queue.
func (s *Synced[T]) Dequeue() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Dequeue()
}

// Len returns the number of items in the wrapped queue.
func (s *Synced[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Len()
}
