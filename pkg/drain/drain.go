package drain

import "time"

// Consumer is the interface that must be implemented by users of the Worker.
// It is responsible for processing a batch of drained items.
type Consumer[T any] interface {
	// Consume processes a batch of items.
	// Returns an error if processing fails; the Worker re-queues the batch.
	Consume(batch []T) error
}

// Config holds configuration for the Worker.
type Config struct {
	// BatchSize is the maximum number of items drained per tick.
	BatchSize int

	// Interval is the time between drain ticks.
	Interval time.Duration
}
