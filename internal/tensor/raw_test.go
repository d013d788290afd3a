package tensor

import (
	"testing"
)

func TestNewRawZeroFilled(t *testing.T) {
	raw, err := NewRaw(Shape{3, 2}, Int64)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}

	data := raw.AsInt64()
	if len(data) != 6 {
		t.Errorf("AsInt64 length = %d, want 6", len(data))
	}
	for i, v := range data {
		if v != 0 {
			t.Errorf("data[%d] = %d, want 0", i, v)
		}
	}

	// Modify and verify zero-copy
	data[0] = 42
	if raw.AsInt64()[0] != 42 {
		t.Error("AsInt64 should return zero-copy slice")
	}
}

func TestNewRawRejectsBadShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, 0}, Float32); err == nil {
		t.Error("expected error for zero dimension")
	}
	if _, err := NewRaw(Shape{2}, DataType(99)); err == nil {
		t.Error("expected error for unknown dtype")
	}
}

func TestScalarHasOneElement(t *testing.T) {
	raw, err := FromSlice(Shape{}, []float64{2.5})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	if raw.NumElements() != 1 || raw.ByteSize() != 8 {
		t.Errorf("scalar: elements=%d bytes=%d", raw.NumElements(), raw.ByteSize())
	}
	if raw.AsFloat64()[0] != 2.5 {
		t.Errorf("scalar value = %v", raw.AsFloat64()[0])
	}
}

func TestFromSliceCopies(t *testing.T) {
	values := []float32{1, 2, 3, 4}
	raw, err := FromSlice(Shape{2, 2}, values)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	values[0] = 100
	if raw.AsFloat32()[0] != 1 {
		t.Error("FromSlice should copy its input")
	}
	if raw.DType() != Float32 {
		t.Errorf("dtype = %s, want float32", raw.DType())
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	if _, err := FromSlice(Shape{2, 3}, []int32{1, 2}); err == nil {
		t.Error("expected error for wrong value count")
	}
}

func TestFromBytes(t *testing.T) {
	raw, err := FromBytes(Shape{4}, Uint8, []byte{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if got := raw.AsUint8()[3]; got != 4 {
		t.Errorf("AsUint8()[3] = %d, want 4", got)
	}

	if _, err := FromBytes(Shape{2}, Float32, []byte{1, 2, 3}); err == nil {
		t.Error("expected error for short buffer")
	}
	// 2^31 * 2^31 * 2 elements wraps to a zero byte count.
	if _, err := FromBytes(Shape{1 << 31, 1 << 31, 2}, Uint8, nil); err == nil {
		t.Error("expected error for overflowing shape")
	}
	if _, err := FromBytes(Shape{3}, Bool, []byte{0, 1, 2}); err == nil {
		t.Error("expected error for non-boolean byte")
	}
	if _, err := FromBytes(Shape{2}, Bool, []byte{1, 0}); err != nil {
		t.Errorf("valid bool buffer: %v", err)
	}
}

func TestAsWrongTypePanics(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Int32)
	defer func() {
		if recover() == nil {
			t.Error("AsFloat32 on int32 tensor should panic")
		}
	}()
	_ = raw.AsFloat32()
}

func TestFloat64s(t *testing.T) {
	tests := []struct {
		name string
		raw  func() (*RawTensor, error)
		want []float64
	}{
		{"float32", func() (*RawTensor, error) { return FromSlice(Shape{2}, []float32{1.5, -2}) }, []float64{1.5, -2}},
		{"int64", func() (*RawTensor, error) { return FromSlice(Shape{3}, []int64{7, 8, 9}) }, []float64{7, 8, 9}},
		{"uint8", func() (*RawTensor, error) { return FromSlice(Shape{2}, []uint8{0, 255}) }, []float64{0, 255}},
		{"bool", func() (*RawTensor, error) { return FromSlice(Shape{2}, []bool{true, false}) }, []float64{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := tt.raw()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			got := raw.Float64s()
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
