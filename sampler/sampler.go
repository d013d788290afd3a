// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package sampler provides index samplers and the mini-batch sampler used by
// the data loader.
//
// Example:
//
//	s, _ := sampler.NewRandom(60000, 42)
//	bs, err := sampler.NewBatchSampler(s, 64, sampler.Rollover)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for epoch := 0; epoch < 5; epoch++ {
//	    fmt.Println("batches this epoch:", bs.Len())
//	    for indices, err := range bs.Batches() {
//	        ...
//	    }
//	}
package sampler

import (
	"github.com/born-ml/dataloader/internal/sampler"
)

// Sampler produces the indices of one pass over a dataset.
type Sampler = sampler.Sampler

// Sized is anything that reports a length, such as a dataset.
type Sized = sampler.Sized

// SequentialSampler yields 0, 1, ..., N-1 on every pass.
type SequentialSampler = sampler.SequentialSampler

// RandomSampler yields a fresh random permutation of [0, N) on every pass.
type RandomSampler = sampler.RandomSampler

// BatchSampler groups sampler output into batches and applies a LastBatch
// policy. Only one pass may run at a time.
type BatchSampler = sampler.BatchSampler

// LastBatch selects how an undersized final batch is handled.
type LastBatch = sampler.LastBatch

// Last-batch policies.
const (
	Keep     LastBatch = sampler.Keep
	Discard  LastBatch = sampler.Discard
	Rollover LastBatch = sampler.Rollover
)

// ConfigurationError reports an invalid or contradictory option.
type ConfigurationError = sampler.ConfigurationError

// Errors.
var (
	ErrConfiguration  = sampler.ErrConfiguration
	ErrPassInProgress = sampler.ErrPassInProgress
)

// NewSequential creates a sequential sampler over a fixed length n.
func NewSequential(n int) (*SequentialSampler, error) {
	return sampler.NewSequential(n)
}

// SequentialOver creates a sequential sampler whose length follows src.Len().
func SequentialOver(src Sized) *SequentialSampler {
	return sampler.SequentialOver(src)
}

// NewRandom creates a random sampler over a fixed length n.
// seed == 0 draws a random seed.
func NewRandom(n int, seed int64) (*RandomSampler, error) {
	return sampler.NewRandom(n, seed)
}

// RandomOver creates a random sampler whose length follows src.Len().
func RandomOver(src Sized, seed int64) *RandomSampler {
	return sampler.RandomOver(src, seed)
}

// NewBatchSampler validates its arguments and creates a BatchSampler.
func NewBatchSampler(s Sampler, batchSize int, lastBatch LastBatch) (*BatchSampler, error) {
	return sampler.NewBatchSampler(s, batchSize, lastBatch)
}

// ParseLastBatch parses "keep", "discard" or "rollover".
func ParseLastBatch(name string) (LastBatch, error) {
	return sampler.ParseLastBatch(name)
}
