// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataloader provides mini-batch iteration over indexable datasets.
//
// This package wraps the internal loader and exports a clean public API.
//
// Example usage:
//
//	import (
//	    "github.com/born-ml/dataloader/dataloader"
//	    "github.com/born-ml/dataloader/sampler"
//	)
//
//	l, err := dataloader.New(ds, dataloader.Options[dataloader.Sample, dataloader.SampleBatch]{
//	    BatchSize: 32,
//	    Shuffle:   true,
//	    LastBatch: sampler.Discard,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for batch, err := range l.All() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    images := batch.Fields[0] // [32, ...]
//	}
package dataloader

import (
	"github.com/born-ml/dataloader/internal/dataloader"
)

// NumFields is the number of tensor fields in a Sample.
const NumFields = dataloader.NumFields

// Dataset is a fixed-length, random-access collection of records.
type Dataset[R any] = dataloader.Dataset[R]

// SliceDataset adapts a slice to Dataset.
type SliceDataset[R any] = dataloader.SliceDataset[R]

// CollateFunc merges the records of one batch into a batch value.
type CollateFunc[R, B any] = dataloader.CollateFunc[R, B]

// Options configures a Loader. See New for the accepted combinations.
type Options[R, B any] = dataloader.Options[R, B]

// Loader iterates over a Dataset in mini-batches.
type Loader[R, B any] = dataloader.Loader[R, B]

// Sample is the record shape handled by the default collate.
type Sample = dataloader.Sample

// SampleBatch is a collated batch of Samples.
type SampleBatch = dataloader.SampleBatch

// IndexError reports a lookup outside the dataset.
type IndexError = dataloader.IndexError

// ConfigurationError reports an invalid or contradictory Options value.
type ConfigurationError = dataloader.ConfigurationError

// Errors.
var (
	ErrConfiguration  = dataloader.ErrConfiguration
	ErrPassInProgress = dataloader.ErrPassInProgress
)

// New validates opts and creates a Loader.
//
// Rules:
//   - BatchSampler excludes BatchSize, Shuffle, Seed, Sampler and LastBatch.
//   - Without BatchSampler, BatchSize is required.
//   - Shuffle and Sampler are mutually exclusive.
//   - A nil Collate selects StackSamples (R = Sample, B = SampleBatch).
func New[R, B any](dataset Dataset[R], opts Options[R, B]) (*Loader[R, B], error) {
	return dataloader.New(dataset, opts)
}

// StackSamples is the default collate function.
func StackSamples(samples []Sample) (SampleBatch, error) {
	return dataloader.StackSamples(samples)
}
