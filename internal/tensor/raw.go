package tensor

import (
	"fmt"
	"unsafe"
)

// RawTensor is a dense, row-major, host memory tensor.
// The element type is carried at runtime so that heterogeneous batch fields
// can travel through one collate signature.
type RawTensor struct {
	data  []byte
	shape Shape
	dtype DataType
}

// NewRaw creates a zero-filled RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	size, err := shape.ByteSize(dtype)
	if err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &RawTensor{
		data:  make([]byte, size),
		shape: shape.Clone(),
		dtype: dtype,
	}, nil
}

// FromBytes wraps an existing little-endian byte buffer.
// The buffer is used as is, not copied. Bool buffers may only hold 0 and 1.
func FromBytes(shape Shape, dtype DataType, data []byte) (*RawTensor, error) {
	want, err := shape.ByteSize(dtype)
	if err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != want {
		return nil, fmt.Errorf("buffer holds %d bytes, shape %v of %s needs %d", len(data), shape, dtype, want)
	}
	if dtype == Bool {
		for i, b := range data {
			if b > 1 {
				return nil, fmt.Errorf("bool element %d holds byte %#x", i, b)
			}
		}
	}

	return &RawTensor{
		data:  data,
		shape: shape.Clone(),
		dtype: dtype,
	}, nil
}

// FromSlice creates a RawTensor holding a copy of values.
//
// Example:
//
//	raw, err := tensor.FromSlice(tensor.Shape{2, 2}, []float32{1, 2, 3, 4})
func FromSlice[T DType](shape Shape, values []T) (*RawTensor, error) {
	raw, err := NewRaw(shape, dataTypeOf[T]())
	if err != nil {
		return nil, err
	}
	if len(values) != raw.NumElements() {
		return nil, fmt.Errorf("got %d values for shape %v (%d elements)", len(values), shape, raw.NumElements())
	}
	copy(view[T](raw), values)
	return raw, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return len(r.data)
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory.
func (r *RawTensor) Data() []byte {
	return r.data
}

// view reinterprets the buffer as []T without copying.
func view[T DType](r *RawTensor) []T {
	if len(r.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by NumElements()
	return unsafe.Slice((*T)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

func (r *RawTensor) mustBe(dt DataType) {
	if r.dtype != dt {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", r.dtype, dt))
	}
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	r.mustBe(Float32)
	return view[float32](r)
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	r.mustBe(Float64)
	return view[float64](r)
}

// AsInt32 interprets the data as []int32.
// Panics if the tensor's dtype is not Int32.
func (r *RawTensor) AsInt32() []int32 {
	r.mustBe(Int32)
	return view[int32](r)
}

// AsInt64 interprets the data as []int64.
// Panics if the tensor's dtype is not Int64.
func (r *RawTensor) AsInt64() []int64 {
	r.mustBe(Int64)
	return view[int64](r)
}

// AsUint8 interprets the data as []uint8.
// Panics if the tensor's dtype is not Uint8.
func (r *RawTensor) AsUint8() []uint8 {
	r.mustBe(Uint8)
	return r.data
}

// AsBool interprets the data as []bool.
// Panics if the tensor's dtype is not Bool.
func (r *RawTensor) AsBool() []bool {
	r.mustBe(Bool)
	return view[bool](r)
}

// Float64s returns a copy of the elements converted to float64,
// whatever the tensor's dtype. Bools map to 0 and 1.
func (r *RawTensor) Float64s() []float64 {
	out := make([]float64, r.NumElements())
	switch r.dtype {
	case Float32:
		for i, v := range view[float32](r) {
			out[i] = float64(v)
		}
	case Float64:
		copy(out, view[float64](r))
	case Int32:
		for i, v := range view[int32](r) {
			out[i] = float64(v)
		}
	case Int64:
		for i, v := range view[int64](r) {
			out[i] = float64(v)
		}
	case Uint8:
		for i, v := range r.data {
			out[i] = float64(v)
		}
	case Bool:
		for i, v := range view[bool](r) {
			if v {
				out[i] = 1
			}
		}
	}
	return out
}
