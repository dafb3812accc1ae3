package sampling

import (
	"fmt"
	"math/rand"

	"github.com/hupe1980/imputego/tabular"
)

// DefaultSeed is the fixed seed deterministic samplers reseed to before
// every draw.
const DefaultSeed = 7

// ErrBatchTooLarge is returned by BatchIndex when more distinct indices are
// requested than exist.
type ErrBatchTooLarge struct {
	Total     int
	BatchSize int
}

func (e *ErrBatchTooLarge) Error() string {
	return fmt.Sprintf("batch size %d exceeds total %d", e.BatchSize, e.Total)
}

// Sampler draws random matrices and indices from a math/rand generator.
// In deterministic mode (the default) the generator is reseeded before every
// draw, making each call independently reproducible.
type Sampler struct {
	rand          *rand.Rand
	seed          int64
	deterministic bool
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithSeed sets the seed used for per-call reseeding.
func WithSeed(seed int64) Option {
	return func(s *Sampler) {
		s.seed = seed
	}
}

// WithSource supplies a caller-owned random source and disables per-call
// reseeding. Use this for production randomness; draws then consume the
// source sequentially and are no longer call-order independent.
func WithSource(src rand.Source) Option {
	return func(s *Sampler) {
		s.rand = rand.New(src) // nolint gosec
		s.deterministic = false
	}
}

// New creates a Sampler. Without options it is deterministic with DefaultSeed.
func New(opts ...Option) *Sampler {
	s := &Sampler{
		seed:          DefaultSeed,
		deterministic: true,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.rand == nil {
		s.rand = rand.New(rand.NewSource(s.seed)) // nolint gosec
	}

	return s
}

func (s *Sampler) reseed() {
	if s.deterministic {
		s.rand.Seed(s.seed)
	}
}

// Binary draws a rows x cols matrix of independent uniform values in [0, 1)
// and maps each to 1 where the draw is below p, else 0.
func (s *Sampler) Binary(p float64, rows, cols int) *tabular.Matrix {
	s.reseed()

	out := tabular.New(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if s.rand.Float64() < p {
				out.Set(i, j, 1)
			}
		}
	}

	return out
}

// Uniform draws a rows x cols matrix of values uniformly distributed in
// [low, high).
func (s *Sampler) Uniform(low, high float64, rows, cols int) *tabular.Matrix {
	s.reseed()

	out := tabular.New(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, low+s.rand.Float64()*(high-low))
		}
	}

	return out
}

// BatchIndex returns batchSize distinct row indices drawn without
// replacement from [0, total): a random permutation truncated to its first
// batchSize entries.
func (s *Sampler) BatchIndex(total, batchSize int) ([]int, error) {
	if batchSize < 0 || total < 0 || batchSize > total {
		return nil, &ErrBatchTooLarge{Total: total, BatchSize: batchSize}
	}

	s.reseed()

	perm := s.rand.Perm(total)
	return perm[:batchSize], nil
}
