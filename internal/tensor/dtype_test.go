package tensor

import "testing"

type label int32

func TestDataTypeTable(t *testing.T) {
	tests := []struct {
		dt   DataType
		name string
		size int
	}{
		{Float32, "float32", 4},
		{Float64, "float64", 8},
		{Int32, "int32", 4},
		{Int64, "int64", 8},
		{Uint8, "uint8", 1},
		{Bool, "bool", 1},
	}
	for _, tt := range tests {
		if !tt.dt.Valid() || tt.dt.String() != tt.name || tt.dt.Size() != tt.size {
			t.Errorf("%d: valid=%v name=%q size=%d", tt.dt, tt.dt.Valid(), tt.dt.String(), tt.dt.Size())
		}
	}

	if DataType(6).Valid() || DataType(6).String() != "unknown" {
		t.Error("tag 6 should be unknown")
	}
}

func TestDataTypeOfNamedType(t *testing.T) {
	if got := dataTypeOf[label](); got != Int32 {
		t.Errorf("dataTypeOf[label] = %s, want int32", got)
	}
	if got := dataTypeOf[bool](); got != Bool {
		t.Errorf("dataTypeOf[bool] = %s, want bool", got)
	}

	raw, err := FromSlice(Shape{2}, []label{3, 4})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	if raw.DType() != Int32 || raw.AsInt32()[1] != 4 {
		t.Errorf("got %s %v", raw.DType(), raw.AsInt32())
	}
}
