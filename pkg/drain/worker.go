package drain

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-queue/pkg/queue"
)

const (
	defaultBatchSize = 64
	defaultInterval  = 100 * time.Millisecond
)

// Worker periodically drains a queue in batches and hands them to a
// Consumer. The source must be safe for concurrent use (e.g. a queue.Synced)
// since producers keep enqueuing while the worker drains.
//
// Behavior:
//   - Every Interval, up to BatchSize items are dequeued and passed to the
//     Consumer in FIFO order.
//   - If Consume fails during the periodic loop, the batch is logged and
//     re-queued at the tail. FIFO order across a failed batch is not
//     preserved relative to items enqueued in the meantime.
//   - Stop performs a final full drain and reports its error, if any.
type Worker[T any] struct {
	source queue.Queue[T]
	cons   Consumer[T]
	cfg    Config
	log    *zap.Logger

	cancel context.CancelFunc
	group  *errgroup.Group
}

// New creates a Worker draining source into cons. Zero config fields use
// defaults; a nil logger disables logging.
func New[T any](source queue.Queue[T], cons Consumer[T], cfg Config, log *zap.Logger) (*Worker[T], error) {
	if source == nil {
		return nil, errors.New("drain: source queue is nil")
	}
	if cons == nil {
		return nil, errors.New("drain: consumer is nil")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Worker[T]{
		source: source,
		cons:   cons,
		cfg:    cfg,
		log:    log,
	}, nil
}

// Start launches the drain loop. Stop must be called to flush remaining
// items and release the goroutine.
func (w *Worker[T]) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.group, ctx = errgroup.WithContext(ctx)
	w.group.Go(func() error {
		return w.run(ctx)
	})
}

// Stop halts the periodic loop, drains everything still queued and returns
// the final flush error, if any. On failure the unflushed items remain in
// the source queue.
func (w *Worker[T]) Stop() error {
	w.cancel()
	if err := w.group.Wait(); err != nil {
		return err
	}
	return w.drainAll()
}

func (w *Worker[T]) run(ctx context.Context) error {
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.flushOnce()
		}
	}
}

// flushOnce drains up to BatchSize items and hands them to the consumer.
// On failure the batch is re-queued at the tail.
func (w *Worker[T]) flushOnce() {
	batch := w.nextBatch()
	if len(batch) == 0 {
		return
	}

	if err := w.cons.Consume(batch); err != nil {
		w.log.Error("consume failed, re-queueing batch",
			zap.Int("batch_size", len(batch)),
			zap.Error(err),
		)
		for _, item := range batch {
			w.source.Enqueue(item)
		}
	}
}

// drainAll flushes everything still queued. Unlike the periodic loop it
// stops at the first failure, re-queueing the failed batch before returning.
func (w *Worker[T]) drainAll() error {
	for {
		batch := w.nextBatch()
		if len(batch) == 0 {
			return nil
		}

		if err := w.cons.Consume(batch); err != nil {
			for _, item := range batch {
				w.source.Enqueue(item)
			}
			return errors.Wrap(err, "drain: final flush failed")
		}
	}
}

// nextBatch dequeues up to BatchSize items in FIFO order.
func (w *Worker[T]) nextBatch() []T {
	batch := make([]T, 0, w.cfg.BatchSize)
	for len(batch) < w.cfg.BatchSize {
		item, ok := w.source.Dequeue()
		if !ok {
			break
		}
		batch = append(batch, item)
	}
	return batch
}
