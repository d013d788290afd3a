package dataloader

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"reflect"

	"github.com/born-ml/dataloader/internal/sampler"
)

// Options configures a Loader.
//
// Either BatchSampler is set and every batching option (BatchSize, Shuffle,
// Seed, Sampler, LastBatch) is left at its zero value, or BatchSampler is nil
// and BatchSize is positive.
type Options[R, B any] struct {
	// BatchSize is the maximum number of records per batch. Zero means unset.
	BatchSize int

	// Shuffle draws a fresh random order every pass. Not allowed with Sampler.
	Shuffle bool

	// Seed makes the shuffle order reproducible. Zero draws a random seed.
	// Only meaningful with Shuffle.
	Seed int64

	// Sampler overrides the index order. Not allowed with Shuffle.
	Sampler sampler.Sampler

	// LastBatch is the tail policy. Empty means sampler.Keep.
	LastBatch sampler.LastBatch

	// Collate merges records into a batch. Nil selects StackSamples, which
	// requires R = Sample and B = SampleBatch.
	Collate CollateFunc[R, B]

	// BatchSampler supplies pre-built batches of indices.
	BatchSampler *sampler.BatchSampler

	// Logger receives debug records per pass. Nil disables logging.
	Logger *slog.Logger
}

// Loader iterates over a Dataset in mini-batches.
//
// A Loader holds no state of its own between passes. Its BatchSampler does
// (the rollover leftover), so two passes over the same Loader, or over two
// Loaders sharing a BatchSampler, must not run at the same time; the later
// one yields sampler.ErrPassInProgress.
type Loader[R, B any] struct {
	dataset Dataset[R]
	batches *sampler.BatchSampler
	collate CollateFunc[R, B]
	logger  *slog.Logger
}

// New validates opts and creates a Loader. Any invalid or contradictory
// combination is reported as a *sampler.ConfigurationError before iteration.
//
// Example:
//
//	l, err := dataloader.New(ds, dataloader.Options[dataloader.Sample, dataloader.SampleBatch]{
//	    BatchSize: 32,
//	    Shuffle:   true,
//	    LastBatch: sampler.Rollover,
//	})
func New[R, B any](dataset Dataset[R], opts Options[R, B]) (*Loader[R, B], error) {
	if dataset == nil {
		return nil, &ConfigurationError{Option: "dataset", Reason: "must not be nil"}
	}

	collate := opts.Collate
	if collate == nil {
		def, ok := any(StackSamples).(func([]R) (B, error))
		if !ok {
			return nil, &ConfigurationError{
				Option: "collate_fn",
				Reason: fmt.Sprintf("no default collate for %v -> %v", reflect.TypeFor[R](), reflect.TypeFor[B]()),
			}
		}
		collate = def
	}

	batches, err := resolveBatchSampler(dataset, opts)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Loader[R, B]{
		dataset: dataset,
		batches: batches,
		collate: collate,
		logger:  logger,
	}, nil
}

func resolveBatchSampler[R, B any](dataset Dataset[R], opts Options[R, B]) (*sampler.BatchSampler, error) {
	if opts.BatchSampler != nil {
		if opts.BatchSize != 0 || opts.Shuffle || opts.Sampler != nil || opts.LastBatch != "" || opts.Seed != 0 {
			return nil, &ConfigurationError{
				Option: "batch_sampler",
				Reason: "batch_size, shuffle, seed, sampler and last_batch must not be set with batch_sampler",
			}
		}
		return opts.BatchSampler, nil
	}

	if opts.BatchSize == 0 {
		return nil, &ConfigurationError{Option: "batch_size", Reason: "must be set unless batch_sampler is set"}
	}
	if opts.Shuffle && opts.Sampler != nil {
		return nil, &ConfigurationError{Option: "shuffle", Reason: "must not be set together with sampler"}
	}
	if opts.Seed != 0 && !opts.Shuffle {
		return nil, &ConfigurationError{Option: "seed", Reason: "requires shuffle"}
	}

	s := opts.Sampler
	switch {
	case s != nil:
	case opts.Shuffle:
		s = sampler.RandomOver(dataset, opts.Seed)
	default:
		s = sampler.SequentialOver(dataset)
	}

	policy := opts.LastBatch
	if policy == "" {
		policy = sampler.Keep
	}
	return sampler.NewBatchSampler(s, opts.BatchSize, policy)
}

// Len returns the number of batches the next pass yields.
func (l *Loader[R, B]) Len() int {
	return l.batches.Len()
}

// BatchSampler returns the batch sampler driving the loader.
func (l *Loader[R, B]) BatchSampler() *sampler.BatchSampler {
	return l.batches
}

// All starts a new pass and yields one collated batch per batch of indices.
//
// Records are fetched in sampler order. If a fetch or the collate call fails,
// the error is yielded unmodified with the zero batch and the pass ends.
// Stop early by breaking out of the range loop.
//
// Example:
//
//	for batch, err := range l.All() {
//	    if err != nil {
//	        return err
//	    }
//	    train(batch)
//	}
func (l *Loader[R, B]) All() iter.Seq2[B, error] {
	return func(yield func(B, error) bool) {
		var zero B
		ctx := context.Background()
		l.logger.DebugContext(ctx, "pass started",
			slog.Int("batches", l.batches.Len()),
			slog.Int("pending", l.batches.Pending()))

		emitted, samples := 0, 0
		for indices, err := range l.batches.Batches() {
			if err != nil {
				yield(zero, err)
				return
			}

			records := make([]R, 0, len(indices))
			for _, idx := range indices {
				rec, err := l.dataset.Get(idx)
				if err != nil {
					yield(zero, err)
					return
				}
				records = append(records, rec)
			}

			batch, err := l.collate(records)
			if err != nil {
				yield(zero, err)
				return
			}
			emitted++
			samples += len(indices)
			if !yield(batch, nil) {
				l.logger.DebugContext(ctx, "pass stopped by consumer", slog.Int("batches", emitted))
				return
			}
		}

		l.logger.DebugContext(ctx, "pass finished",
			slog.Int("batches", emitted),
			slog.Int("samples", samples),
			slog.Int("pending", l.batches.Pending()))
	}
}
