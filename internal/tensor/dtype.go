// Package tensor provides the dense array type that collated batches are made of.
package tensor

import (
	"fmt"
	"reflect"
)

// DType lists the Go element types a RawTensor can be viewed as.
// Named types with one of these underlying types are accepted too.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~bool
}

// DataType tags the element type of a RawTensor at runtime. Its value is
// stored as one byte in record files, so the order below is part of the
// on-disk format.
type DataType uint8

const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
	Bool
)

var dataTypes = [...]struct {
	name string
	size int
	kind reflect.Kind
}{
	Float32: {"float32", 4, reflect.Float32},
	Float64: {"float64", 8, reflect.Float64},
	Int32:   {"int32", 4, reflect.Int32},
	Int64:   {"int64", 8, reflect.Int64},
	Uint8:   {"uint8", 1, reflect.Uint8},
	Bool:    {"bool", 1, reflect.Bool},
}

// Valid reports whether dt names a known element type.
func (dt DataType) Valid() bool {
	return int(dt) < len(dataTypes)
}

// Size is the width of one element in bytes. It panics on an unknown tag.
func (dt DataType) Size() int {
	if !dt.Valid() {
		panic(fmt.Sprintf("unknown data type %d", uint8(dt)))
	}
	return dataTypes[dt].size
}

func (dt DataType) String() string {
	if !dt.Valid() {
		return "unknown"
	}
	return dataTypes[dt].name
}

// dataTypeOf resolves the tag for T through its underlying kind.
func dataTypeOf[T DType]() DataType {
	kind := reflect.TypeFor[T]().Kind()
	for dt, info := range dataTypes {
		if info.kind == kind {
			return DataType(dt) //nolint:gosec // G115: index of a six-entry table
		}
	}
	panic(fmt.Sprintf("unsupported element kind %s", kind))
}
