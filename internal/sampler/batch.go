package sampler

import (
	"iter"
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"
)

// BatchSampler groups the indices of a Sampler into batches of at most
// BatchSize elements.
//
// Under Rollover the undersized tail of a pass is kept as a leftover and
// consumed at the head of the next pass, before any fresh index. The leftover
// is taken as soon as a pass starts, so breaking out of a pass early loses it.
//
// A BatchSampler must not be iterated by two passes at once: the second pass
// yields ErrPassInProgress and ends.
type BatchSampler struct {
	sampler   Sampler
	batchSize int
	lastBatch LastBatch

	running atomic.Bool

	mu       sync.Mutex   // guards leftover
	leftover *queue.Queue // of int
}

// NewBatchSampler validates its arguments and creates a BatchSampler.
//
// Returns a *ConfigurationError if s is nil, batchSize < 1 or lastBatch is not
// Keep, Discard or Rollover.
func NewBatchSampler(s Sampler, batchSize int, lastBatch LastBatch) (*BatchSampler, error) {
	if s == nil {
		return nil, configErrorf("sampler", "must not be nil")
	}
	if batchSize < 1 {
		return nil, configErrorf("batch_size", "must be a positive integer, got %d", batchSize)
	}
	if !lastBatch.Valid() {
		return nil, configErrorf("last_batch", "%q is not one of keep, discard, rollover", string(lastBatch))
	}

	return &BatchSampler{
		sampler:   s,
		batchSize: batchSize,
		lastBatch: lastBatch,
		leftover:  queue.New(),
	}, nil
}

// Sampler returns the underlying index sampler.
func (b *BatchSampler) Sampler() Sampler {
	return b.sampler
}

// BatchSize returns the maximum batch length.
func (b *BatchSampler) BatchSize() int {
	return b.batchSize
}

// LastBatch returns the last-batch policy.
func (b *BatchSampler) LastBatch() LastBatch {
	return b.lastBatch
}

// Pending returns the number of indices carried over to the next pass.
// Always zero unless the policy is Rollover.
func (b *BatchSampler) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.leftover.Length()
}

// Len returns the number of batches the next pass produces:
//   - Keep: ceil(N / BatchSize)
//   - Discard: floor(N / BatchSize)
//   - Rollover: floor((Pending() + N) / BatchSize)
func (b *BatchSampler) Len() int {
	n := b.sampler.Len()
	switch b.lastBatch {
	case Keep:
		return (n + b.batchSize - 1) / b.batchSize
	case Discard:
		return n / b.batchSize
	case Rollover:
		return (b.Pending() + n) / b.batchSize
	default:
		return 0
	}
}

// Batches starts a new pass and yields each batch of indices.
//
// Every yielded slice is freshly allocated and may be retained by the caller.
// The only error ever yielded is ErrPassInProgress.
func (b *BatchSampler) Batches() iter.Seq2[[]int, error] {
	return func(yield func([]int, error) bool) {
		if !b.running.CompareAndSwap(false, true) {
			yield(nil, ErrPassInProgress)
			return
		}
		defer b.running.Store(false)

		batch := b.takeLeftover()
		for idx := range b.sampler.Indices() {
			batch = append(batch, idx)
			if len(batch) < b.batchSize {
				continue
			}
			if !yield(batch, nil) {
				return
			}
			batch = make([]int, 0, b.batchSize)
		}

		if len(batch) == 0 {
			return
		}
		switch b.lastBatch {
		case Keep:
			yield(batch, nil)
		case Rollover:
			b.storeLeftover(batch)
		case Discard:
		}
	}
}

// takeLeftover drains the carried indices into the head of a new batch buffer.
func (b *BatchSampler) takeLeftover() []int {
	b.mu.Lock()
	defer b.mu.Unlock()

	batch := make([]int, 0, b.batchSize)
	for b.leftover.Length() > 0 {
		batch = append(batch, b.leftover.Remove().(int))
	}
	return batch
}

func (b *BatchSampler) storeLeftover(indices []int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, idx := range indices {
		b.leftover.Add(idx)
	}
}
