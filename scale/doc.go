// Package scale provides feature-wise min-max normalization and its inverse.
//
// Normalize rescales every column independently to [0, 1] based on observed
// (non-NaN) extrema and returns the fitted parameters so the transform can be
// replayed or inverted:
//
//	norm, params := scale.Normalize(data)
//	same, _ := scale.NormalizeWith(other, params) // reuse fitted extrema
//	back, _ := scale.Denormalize(norm, params.Bounds())
//
// Every division carries a 1e-6 epsilon, so constant columns degrade
// gracefully instead of dividing by zero. NaN entries propagate untouched.
//
// Denormalize takes a tagged Bounds value: PerColumn for one min/max pair per
// feature, Scalar to broadcast a single pair across all columns.
package scale
