package tensor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Shape represents the dimensions of a tensor. An empty shape is a scalar.
type Shape []int

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is positive and that the element
// count fits in an int.
func (s Shape) Validate() error {
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("shape %v overflows the element count", s)
		}
		n *= dim
	}
	return nil
}

// ByteSize returns the buffer length a tensor of this shape and type needs.
// It fails on invalid shapes and on sizes that overflow an int.
func (s Shape) ByteSize(dtype DataType) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if !dtype.Valid() {
		return 0, fmt.Errorf("invalid data type %d", uint8(dtype))
	}
	n, size := s.NumElements(), dtype.Size()
	if n > math.MaxInt/size {
		return 0, fmt.Errorf("shape %v of %s overflows the byte size", s, dtype)
	}
	return n * size, nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	return append(Shape(nil), s...)
}

// Prepend returns a new shape with dim inserted as the leading axis.
func (s Shape) Prepend(dim int) Shape {
	out := make(Shape, 0, len(s)+1)
	out = append(out, dim)
	return append(out, s...)
}

// String formats the shape as [d0 d1 ...].
func (s Shape) String() string {
	return fmt.Sprint([]int(s))
}

// ParseShape parses a comma separated list of dimensions such as "28,28".
func ParseShape(text string) (Shape, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Shape{}, nil
	}
	parts := strings.Split(text, ",")
	shape := make(Shape, len(parts))
	for i, p := range parts {
		dim, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid dimension %q: %w", p, err)
		}
		shape[i] = dim
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}
