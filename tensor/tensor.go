// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/dataloader/internal/tensor"
)

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType represents the runtime element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Shape represents tensor dimensions.
type Shape = tensor.Shape

// RawTensor is a dense, row-major, host memory tensor.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType()
//   - Zero-copy typed access via AsFloat32(), AsInt64(), etc.
//   - Byte access via Data() for serialization
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
//	data := raw.AsFloat32() // Type-safe access
type RawTensor = tensor.RawTensor

// ErrEmptyStack is returned when Stack is given no tensors.
var ErrEmptyStack = tensor.ErrEmptyStack

// NewRaw creates a zero-filled tensor.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromBytes wraps a little-endian byte buffer without copying it.
func FromBytes(shape Shape, dtype DataType, data []byte) (*RawTensor, error) {
	return tensor.FromBytes(shape, dtype, data)
}

// FromSlice creates a tensor holding a copy of values.
func FromSlice[T DType](shape Shape, values []T) (*RawTensor, error) {
	return tensor.FromSlice(shape, values)
}

// Stack joins tensors of identical shape and dtype along a new leading axis.
func Stack(ts []*RawTensor) (*RawTensor, error) {
	return tensor.Stack(ts)
}

// ParseShape parses a comma separated list of dimensions such as "28,28".
func ParseShape(text string) (Shape, error) {
	return tensor.ParseShape(text)
}
