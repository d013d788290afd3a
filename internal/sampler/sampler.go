package sampler

import (
	"iter"
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/stat/sampleuv"
)

// Sampler produces the indices of one pass over a dataset.
type Sampler interface {
	// Len returns the number of indices a pass produces.
	Len() int

	// Indices starts a new pass. The sequence covers [0, Len()) exactly once.
	Indices() iter.Seq[int]
}

// Sized is anything that reports a length, such as a dataset.
type Sized interface {
	Len() int
}

type fixedSize int

func (n fixedSize) Len() int { return int(n) }

// SequentialSampler yields 0, 1, ..., N-1 on every pass.
type SequentialSampler struct {
	src Sized
}

// NewSequential creates a sequential sampler over a fixed length n.
func NewSequential(n int) (*SequentialSampler, error) {
	if n < 0 {
		return nil, configErrorf("length", "must be >= 0, got %d", n)
	}
	return &SequentialSampler{src: fixedSize(n)}, nil
}

// SequentialOver creates a sequential sampler whose length follows src.Len(),
// read again at the start of every pass.
func SequentialOver(src Sized) *SequentialSampler {
	return &SequentialSampler{src: src}
}

// Len returns N.
func (s *SequentialSampler) Len() int {
	return max(s.src.Len(), 0)
}

// Indices yields 0..N-1 in order.
func (s *SequentialSampler) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		n := s.Len()
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// RandomSampler yields a uniformly random permutation of [0, N),
// drawn fresh on every pass.
type RandomSampler struct {
	src Sized

	mu  sync.Mutex // guards rng
	rng *rand.PCG
}

// NewRandom creates a random sampler over a fixed length n.
//
// seed == 0 draws a random seed. Any other seed makes the sequence of
// per-pass permutations reproducible across runs.
func NewRandom(n int, seed int64) (*RandomSampler, error) {
	if n < 0 {
		return nil, configErrorf("length", "must be >= 0, got %d", n)
	}
	return RandomOver(fixedSize(n), seed), nil
}

// RandomOver creates a random sampler whose length follows src.Len().
// See NewRandom for the meaning of seed.
func RandomOver(src Sized, seed int64) *RandomSampler {
	var pcg *rand.PCG
	if seed != 0 {
		pcg = rand.NewPCG(uint64(seed), uint64(seed)) //nolint:gosec // Intentional deterministic seed for reproducibility
	} else {
		pcg = rand.NewPCG(rand.Uint64(), rand.Uint64()) //nolint:gosec // Not used for security
	}
	return &RandomSampler{src: src, rng: pcg}
}

// Len returns N.
func (s *RandomSampler) Len() int {
	return max(s.src.Len(), 0)
}

// Indices draws a new permutation and yields it.
func (s *RandomSampler) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, idx := range s.permutation() {
			if !yield(idx) {
				return
			}
		}
	}
}

func (s *RandomSampler) permutation() []int {
	n := s.Len()
	perm := make([]int, n)
	if n == 0 {
		return perm
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sampleuv.WithoutReplacement(perm, n, s.rng)
	return perm
}
