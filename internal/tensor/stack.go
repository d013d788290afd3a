package tensor

import (
	"errors"
	"fmt"
)

// ErrEmptyStack is returned when Stack is given no tensors.
var ErrEmptyStack = errors.New("stack: at least one tensor required")

// Stack joins tensors of identical shape and dtype along a new leading axis.
//
// The result has shape [len(ts), ts[0].Shape()...] and owns fresh memory:
// later writes to the inputs do not show through.
//
// Example:
//
//	a, _ := tensor.FromSlice(tensor.Shape{3}, []float32{1, 2, 3})
//	b, _ := tensor.FromSlice(tensor.Shape{3}, []float32{4, 5, 6})
//	s, _ := tensor.Stack([]*tensor.RawTensor{a, b}) // Shape: [2 3]
func Stack(ts []*RawTensor) (*RawTensor, error) {
	if len(ts) == 0 {
		return nil, ErrEmptyStack
	}
	first := ts[0]
	if first == nil {
		return nil, fmt.Errorf("stack: tensor 0 is nil")
	}

	for i, t := range ts[1:] {
		if t == nil {
			return nil, fmt.Errorf("stack: tensor %d is nil", i+1)
		}
		if t.dtype != first.dtype {
			return nil, fmt.Errorf("stack: tensor %d has dtype %s, want %s", i+1, t.dtype, first.dtype)
		}
		if !t.shape.Equal(first.shape) {
			return nil, fmt.Errorf("stack: tensor %d has shape %v, want %v", i+1, t.shape, first.shape)
		}
	}

	out, err := NewRaw(first.shape.Prepend(len(ts)), first.dtype)
	if err != nil {
		return nil, fmt.Errorf("stack: %w", err)
	}

	step := first.ByteSize()
	for i, t := range ts {
		copy(out.data[i*step:(i+1)*step], t.data)
	}
	return out, nil
}
