package recordfile

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/dataloader/internal/dataloader"
	"github.com/born-ml/dataloader/internal/tensor"
)

func TestWriteReadMixedDTypes(t *testing.T) {
	img, err := tensor.FromSlice(tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	label, err := tensor.FromSlice(tensor.Shape{}, []int32{7})
	require.NoError(t, err)
	mask, err := tensor.FromSlice(tensor.Shape{3}, []bool{true, false, true})
	require.NoError(t, err)
	depth, err := tensor.FromSlice(tensor.Shape{1, 2}, []float64{0.25, 0.5})
	require.NoError(t, err)

	in := []dataloader.Sample{{
		Name:   "cat.png",
		Fields: [dataloader.NumFields]*tensor.RawTensor{img, label, mask, depth},
	}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))

	out, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, out, 1)

	got := out[0]
	assert.Equal(t, "cat.png", got.Name)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, got.Fields[0].AsFloat32())
	assert.True(t, got.Fields[0].Shape().Equal(tensor.Shape{2, 3}))
	assert.Equal(t, []int32{7}, got.Fields[1].AsInt32())
	assert.Empty(t, got.Fields[1].Shape())
	assert.Equal(t, []bool{true, false, true}, got.Fields[2].AsBool())
	assert.Equal(t, []float64{0.25, 0.5}, got.Fields[3].AsFloat64())
}

func TestReadRejectsGarbage(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("definitely not zstd")))
	assert.Error(t, err)
}

func TestReadRejectsOversizedDims(t *testing.T) {
	tests := []struct {
		name  string
		dtype tensor.DataType
		dims  []uint32
	}{
		{"element count overflow", tensor.Uint8, []uint32{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF}},
		{"byte count wraps to zero", tensor.Uint8, []uint32{1 << 31, 1 << 31, 2}},
		{"above size limit", tensor.Float64, []uint32{1 << 31, 16}},
		{"just above limit", tensor.Uint8, []uint32{maxTensorBytes + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeCompressed(&buf, singleRecord(tt.dtype, tt.dims, nil)))

			var out []dataloader.Sample
			var err error
			require.NotPanics(t, func() { out, err = Read(&buf) })
			assert.Nil(t, out)
			assert.ErrorContains(t, err, "field 0")
		})
	}
}

func TestReadRejectsInvalidBool(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCompressed(&buf, singleRecord(tensor.Bool, []uint32{3}, []byte{1, 0, 7})))

	_, err := Read(&buf)
	assert.ErrorContains(t, err, "bool element 2")
}

func TestReadRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	raw := buf.Bytes()

	// Re-encode a stream with a different magic.
	var bad bytes.Buffer
	require.NoError(t, writeCompressed(&bad, []byte("NOPE\x01\x00\x00\x00\x00\x00")))
	_, err := Read(&bad)
	assert.ErrorIs(t, err, ErrBadMagic)

	out, err := Read(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestWriteRejectsNilField(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []dataloader.Sample{{Name: "empty"}})
	assert.ErrorContains(t, err, "field 0 is nil")
}

func TestSaveLoadSynthetic(t *testing.T) {
	samples, err := Synthetic(12, tensor.Shape{4, 4}, 1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "train.bdlr")
	require.NoError(t, Save(path, samples))

	ds, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 12, ds.Len())

	s, err := ds.Get(11)
	require.NoError(t, err)
	assert.Equal(t, "sample-00011", s.Name)
	assert.Equal(t, samples[11].Fields[2].AsFloat32(), s.Fields[2].AsFloat32())
}

func TestSyntheticDeterministic(t *testing.T) {
	a, err := Synthetic(3, tensor.Shape{5}, 42)
	require.NoError(t, err)
	b, err := Synthetic(3, tensor.Shape{5}, 42)
	require.NoError(t, err)

	for i := range a {
		for k := range dataloader.NumFields {
			assert.Equal(t, a[i].Fields[k].AsFloat32(), b[i].Fields[k].AsFloat32())
		}
	}

	_, err = Synthetic(-1, tensor.Shape{5}, 1)
	assert.Error(t, err)
	_, err = Synthetic(1, tensor.Shape{0}, 1)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.bdlr"))
	assert.Error(t, err)
}
