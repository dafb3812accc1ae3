package impute

import (
	"math"

	"github.com/hupe1980/imputego/tabular"
)

// DefaultCategoricalThreshold is the distinct-value count below which a
// column is treated as categorical and rounded. The default reflects the
// low-cardinality features of typical imputation benchmarks.
const DefaultCategoricalThreshold = 20

type roundOptions struct {
	categoricalThreshold int
}

// RoundOption configures Round.
type RoundOption func(*roundOptions)

// WithCategoricalThreshold overrides the distinct-value threshold under
// which a column is rounded.
func WithCategoricalThreshold(n int) RoundOption {
	return func(o *roundOptions) {
		o.categoricalThreshold = n
	}
}

// Round snaps categorical columns of imputed back to integers.
//
// A column is categorical when the distinct observed (non-NaN) values of
// that column in original number fewer than the threshold; its entries in
// imputed are then rounded to the nearest integer, ties away from zero
// (math.Round, so 2.5 rounds to 3 and -2.5 to -3). Columns at or above the
// threshold are returned untouched. The inputs are not modified.
func Round(imputed, original *tabular.Matrix, opts ...RoundOption) *tabular.Matrix {
	o := roundOptions{categoricalThreshold: DefaultCategoricalThreshold}
	for _, opt := range opts {
		opt(&o)
	}

	rows, cols := imputed.Dims()
	origRows, _ := original.Dims()
	out := imputed.Clone()

	for j := 0; j < cols; j++ {
		if !categorical(original, j, origRows, o.categoricalThreshold) {
			continue
		}
		for i := 0; i < rows; i++ {
			out.Set(i, j, math.Round(out.At(i, j)))
		}
	}

	return out
}

// categorical reports whether column j of m has fewer than threshold
// distinct observed values.
func categorical(m *tabular.Matrix, j, rows, threshold int) bool {
	distinct := make(map[float64]struct{})
	for i := 0; i < rows; i++ {
		v := m.At(i, j)
		if math.IsNaN(v) {
			continue
		}
		distinct[v] = struct{}{}
		if len(distinct) >= threshold {
			return false
		}
	}
	return true
}
