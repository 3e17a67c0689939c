package queue

var _ Queue[int] = (*Persistent[int])(nil)

// Persistent is an unbounded FIFO queue with value semantics. The sequence
// lives in an immutable singly linked chain held behind an opaque head;
// Enqueue and Dequeue replace the chain rather than rewiring nodes, so a
// Clone can never be changed by later mutations of the original and vice
// versa. The chain type is unexported: callers cannot fabricate a sequence
// that bypasses the single-terminal invariant.
//
// Enqueue is O(n) in the current length because the insertion point is the
// logical tail, reachable only from the head. Dequeue is O(1). Callers
// needing O(1) on both ends should use Ring instead.
//
// A Persistent is not safe for concurrent use; wrap it in Synced when a
// single instance is shared across goroutines.
type Persistent[T any] struct {
	head *chain[T]
	size int
}

// NewPersistent creates an empty queue.
func NewPersistent[T any]() *Persistent[T] {
	return &Persistent[T]{}
}

// Enqueue appends item at the back of the queue. Always succeeds.
func (q *Persistent[T]) Enqueue(item T) bool {
	q.head = q.head.push(item)
	q.size++
	return true
}

// Dequeue removes and returns the front item.
// Returns (zero, false) if the queue is empty, leaving it unchanged.
func (q *Persistent[T]) Dequeue() (T, bool) {
	v, rest, ok := q.head.pop()
	if !ok {
		return v, false
	}
	q.head = rest
	q.size--
	return v, true
}

// Peek returns the front item without removing it.
// Returns (zero, false) if the queue is empty.
func (q *Persistent[T]) Peek() (T, bool) {
	v, _, ok := q.head.pop()
	return v, ok
}

// Len returns the number of items in the queue.
func (q *Persistent[T]) Len() int { return q.size }

// IsEmpty returns true if the queue holds no items.
func (q *Persistent[T]) IsEmpty() bool { return q.head == nil }

// Clear drops all items from the queue.
func (q *Persistent[T]) Clear() {
	q.head = nil
	q.size = 0
}

// Clone returns an independent copy of the queue. The copy owns its chain
// exclusively, so no node is reachable from both queues.
func (q *Persistent[T]) Clone() *Persistent[T] {
	return &Persistent[T]{head: q.head.clone(), size: q.size}
}

// Items returns the queued items front to back.
func (q *Persistent[T]) Items() []T {
	out := make([]T, 0, q.size)
	q.head.each(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// EnqueueBatch appends multiple items. Returns the count enqueued.
func (q *Persistent[T]) EnqueueBatch(items []T) int {
	for _, item := range items {
		q.Enqueue(item)
	}
	return len(items)
}

// DequeueBatch removes multiple items into out. Returns the count dequeued.
func (q *Persistent[T]) DequeueBatch(out []T) int {
	count := 0
	for i := range out {
		item, ok := q.Dequeue()
		if !ok {
			break
		}
		out[i] = item
		count++
	}
	return count
}
