package dataloader

import (
	"fmt"

	"github.com/born-ml/dataloader/internal/tensor"
)

// NumFields is the number of tensor fields in a Sample.
const NumFields = 4

// CollateFunc merges the records of one batch, in sampler order, into a
// batch value. It is called with 1 <= len(records) <= batch size.
type CollateFunc[R, B any] func(records []R) (B, error)

// Sample is the record shape handled by the default collate:
// a name plus four tensor fields.
type Sample struct {
	Name   string
	Fields [NumFields]*tensor.RawTensor
}

// SampleBatch is a collated batch of Samples.
// Fields[k] has shape [n, sampleShape...] where n is the batch length.
type SampleBatch struct {
	Names  []string
	Fields [NumFields]*tensor.RawTensor
}

// Len returns the number of samples in the batch.
func (b SampleBatch) Len() int {
	return len(b.Names)
}

// StackSamples is the default collate function. It keeps the names in order
// and stacks each field position along a new leading axis.
//
// Every sample must carry all four fields, and samples must agree on the
// shape and dtype of each field.
func StackSamples(samples []Sample) (SampleBatch, error) {
	if len(samples) == 0 {
		return SampleBatch{}, fmt.Errorf("collate: empty batch")
	}

	batch := SampleBatch{Names: make([]string, len(samples))}
	for i, s := range samples {
		batch.Names[i] = s.Name
	}

	column := make([]*tensor.RawTensor, len(samples))
	for k := range NumFields {
		for i, s := range samples {
			if s.Fields[k] == nil {
				return SampleBatch{}, fmt.Errorf("collate: sample %q has no field %d", s.Name, k)
			}
			column[i] = s.Fields[k]
		}
		stacked, err := tensor.Stack(column)
		if err != nil {
			return SampleBatch{}, fmt.Errorf("collate field %d: %w", k, err)
		}
		batch.Fields[k] = stacked
	}
	return batch, nil
}
