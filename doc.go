// Package imputego provides the numeric support toolkit for data-imputation
// pipelines: feature-wise min-max normalization, categorical rounding,
// reconstruction-error scoring, seeded random sampling, missingness
// injection and delimited dataset I/O.
//
// The toolkit is deliberately stateless. Every function is a pure (or
// seeded-pseudo-random) transform over in-memory tabular data; nothing is
// retained between calls and inputs are never mutated.
//
// # Packages
//
//   - tabular: dense 2-D float64 matrix, NaN marks missing entries
//   - scale: min-max normalization and its inverse
//   - sampling: reproducible binary/uniform/batch-index samplers
//   - mask: compact missingness masks backed by roaring bitmaps
//   - impute: categorical rounding, RMSE scoring, missingness injection
//   - dataset: tab-separated read/append with optional compression
//   - dataset/store: local, S3 and MinIO dataset storage backends
//
// # Quick Start
//
//	x, _ := dataset.ReadFile("panel.hap.gz")
//
//	s := sampling.New() // deterministic, reseeds before every draw
//	_, corrupted, m := impute.Corrupt(x, 0.2, s)
//
//	norm, params := scale.Normalize(corrupted)
//	// ... impute norm ...
//	imputed := scale.Denormalize(norm, params.Bounds())
//	imputed = impute.Round(imputed, corrupted)
//
//	rmse, _ := impute.RMSE(x, imputed, m.Matrix())
//	_ = dataset.AppendFile("out.hap", imputed)
//
// # Reproducibility
//
// Samplers reseed to a fixed constant before every draw by default, so two
// calls with identical arguments return identical output anywhere in the
// process. Pass sampling.WithSource to trade that for real randomness.
package imputego
