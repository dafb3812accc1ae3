// Package sampling provides the seeded pseudo-random samplers used to build
// missingness masks, hint matrices and mini-batch indices.
//
// A Sampler is deterministic by default: it reseeds its generator to
// DefaultSeed before every draw, so a call with given arguments returns the
// same output anywhere in the process, regardless of call order or prior
// draws. That makes experiments reproducible without threading a generator
// through every call site.
//
//	s := sampling.New()
//	mask := s.Binary(0.9, rows, cols)   // identical on every call
//	noise := s.Uniform(0, 0.01, rows, cols)
//	batch, err := s.BatchIndex(total, batchSize)
//
// For production randomness, hand the Sampler your own source; per-call
// reseeding is then disabled and draws consume the source sequentially:
//
//	s := sampling.New(sampling.WithSource(rand.NewSource(time.Now().UnixNano())))
//
// A Sampler is not safe for concurrent use; create one per goroutine.
package sampling
