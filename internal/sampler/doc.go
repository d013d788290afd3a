// Package sampler implements index sampling and mini-batch grouping.
//
// A Sampler produces every index of a dataset exactly once per pass, either in
// order (SequentialSampler) or as a fresh random permutation (RandomSampler).
// A BatchSampler groups that stream into lists of at most BatchSize indices
// and resolves the undersized tail of a pass with a LastBatch policy:
//   - Keep: emit the short batch.
//   - Discard: drop it.
//   - Rollover: hold it back and emit it at the head of the next pass.
//
// Samplers are built once and reused for every epoch. Each call to Indices or
// Batches starts a new pass.
//
// Concurrency: a BatchSampler runs one pass at a time. Its rollover leftover is
// a single piece of cross-pass state, so a pass started while another one is
// still being consumed yields ErrPassInProgress instead of sharing it.
//
// Example:
//
//	s, _ := sampler.NewSequential(10)
//	bs, err := sampler.NewBatchSampler(s, 3, sampler.Keep)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for batch, err := range bs.Batches() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(batch) // [0 1 2] [3 4 5] [6 7 8] [9]
//	}
package sampler
