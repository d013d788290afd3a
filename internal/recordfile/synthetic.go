package recordfile

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/born-ml/dataloader/internal/dataloader"
	"github.com/born-ml/dataloader/internal/tensor"
)

// Synthetic generates n deterministic float32 samples named "sample-00000"...
// Field k of every sample has the given shape and values drawn from N(k, 1),
// so batch statistics are easy to predict.
func Synthetic(n int, shape tensor.Shape, seed uint64) ([]dataloader.Sample, error) {
	if n < 0 {
		return nil, fmt.Errorf("sample count must be >= 0, got %d", n)
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	dists := make([]distuv.Normal, dataloader.NumFields)
	for k := range dists {
		dists[k] = distuv.Normal{Mu: float64(k), Sigma: 1, Src: src}
	}

	size := shape.NumElements()
	samples := make([]dataloader.Sample, n)
	for i := range samples {
		samples[i].Name = fmt.Sprintf("sample-%05d", i)
		for k := range dataloader.NumFields {
			values := make([]float32, size)
			for j := range values {
				values[j] = float32(dists[k].Rand())
			}
			raw, err := tensor.FromSlice(shape, values)
			if err != nil {
				return nil, err
			}
			samples[i].Fields[k] = raw
		}
	}
	return samples, nil
}
