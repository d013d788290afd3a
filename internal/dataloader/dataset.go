package dataloader

import "fmt"

// Dataset is a fixed-length, random-access collection of records.
// It must not change while a pass is running.
type Dataset[R any] interface {
	// Len returns the number of records.
	Len() int

	// Get returns the record at index i, 0 <= i < Len().
	Get(i int) (R, error)
}

// IndexError reports a lookup outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// SliceDataset adapts a slice to Dataset.
type SliceDataset[R any] []R

// Len returns len(d).
func (d SliceDataset[R]) Len() int {
	return len(d)
}

// Get returns d[i] or an *IndexError.
func (d SliceDataset[R]) Get(i int) (R, error) {
	if i < 0 || i >= len(d) {
		var zero R
		return zero, &IndexError{Index: i, Len: len(d)}
	}
	return d[i], nil
}
