// Package queue provides generic FIFO queues.
//
// Persistent is the linked representation: an immutable recursive chain with
// O(n) Enqueue and O(1) Dequeue, whose updates replace the chain instead of
// rewiring nodes. Ring is the array-backed representation with amortized O(1)
// on both ends. A circular doubly-linked variant is deliberately absent:
// under value semantics a node cannot hold neighbor links that refer back to
// itself at construction time, and identity checks on values would reintroduce
// O(n) cost; the ring sidesteps the problem with index arithmetic.
package queue

// Queue is a generic interface for FIFO queues.
type Queue[T any] interface {
	// Enqueue adds an item to the queue.
	// Returns true if successful, false if the queue cannot accept the item.
	Enqueue(item T) bool

	// Dequeue removes and returns the item at the front of the queue.
	// Returns (item, true) if successful, (zero, false) if the queue is empty.
	Dequeue() (T, bool)

	// Len returns the number of items currently in the queue.
	Len() int
}
