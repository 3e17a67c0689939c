package queue

// chain is the recursive representation behind Persistent. A value is either
// the empty sequence (nil) or a node holding one element and owning the
// remainder outright, so every chain is a finite sequence ending in exactly
// one nil terminal. Nodes are never mutated after construction; every update
// builds a replacement chain.
type chain[T any] struct {
	value T
	rest  *chain[T] // nil terminates the sequence
}

// push returns a chain with v appended at the logical tail. The spine is
// rebuilt node by node, so the result shares no nodes with the receiver.
// Cost is linear in the chain length: the tail is only reachable by walking
// from the head.
func (c *chain[T]) push(v T) *chain[T] {
	if c == nil {
		return &chain[T]{value: v}
	}
	return &chain[T]{value: c.value, rest: c.rest.push(v)}
}

// pop splits the chain into its front element and the remainder.
// Returns false on the empty chain.
func (c *chain[T]) pop() (T, *chain[T], bool) {
	if c == nil {
		var zero T
		return zero, nil, false
	}
	return c.value, c.rest, true
}

// clone deep-copies the chain so the copy owns its nodes exclusively.
func (c *chain[T]) clone() *chain[T] {
	if c == nil {
		return nil
	}
	return &chain[T]{value: c.value, rest: c.rest.clone()}
}

// each walks the chain front to back, stopping early if fn returns false.
func (c *chain[T]) each(fn func(T) bool) {
	for n := c; n != nil; n = n.rest {
		if !fn(n.value) {
			return
		}
	}
}
