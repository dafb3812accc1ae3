// Package tabular provides the dense 2-D numeric matrix shared by the
// imputego packages.
//
// A Matrix is row-major float64 storage with rows as samples and columns as
// features. Missing entries are IEEE NaN. Matrices are value-like: every
// transform in the toolkit clones its input and returns a fresh Matrix, so
// callers never see their data mutated.
//
//	m := tabular.New(2, 3)
//	m.Set(0, 1, 4.2)
//	m.SetMissing(1, 2)
//
//	clone := m.Clone()
package tabular
