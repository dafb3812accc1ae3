package impute

import (
	"github.com/hupe1980/imputego/mask"
	"github.com/hupe1980/imputego/sampling"
	"github.com/hupe1980/imputego/tabular"
)

// DefaultSentinel is the textual missing-value marker used by
// CorruptStrings. It matches the unphased-missing genotype token of hap
// panel files.
const DefaultSentinel = ".|."

// Corrupt simulates missingness: it draws a keep mask with probability
// 1-missRate per cell and returns a copy of x, a corrupted copy with the
// masked-out cells set to NaN, and the mask itself. x is not modified.
func Corrupt(x *tabular.Matrix, missRate float64, s *sampling.Sampler) (orig, corrupted *tabular.Matrix, k *mask.Mask) {
	rows, cols := x.Dims()

	ind := s.Binary(1-missRate, rows, cols)
	k, _ = mask.FromMatrix(ind) // Binary only emits 0/1

	corrupted = x.Clone()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if k.IsMissing(i, j) {
				corrupted.SetMissing(i, j)
			}
		}
	}

	return x.Clone(), corrupted, k
}

type corruptStringsOptions struct {
	sentinel string
}

// CorruptStringsOption configures CorruptStrings.
type CorruptStringsOption func(*corruptStringsOptions)

// WithSentinel overrides the textual missing-value marker.
func WithSentinel(sentinel string) CorruptStringsOption {
	return func(o *corruptStringsOptions) {
		o.sentinel = sentinel
	}
}

// CorruptStrings is the textual-table variant of Corrupt for mixed or
// non-numeric datasets. Masked-out cells are replaced by the sentinel token
// (DefaultSentinel unless overridden) rather than NaN. All rows must share
// the length of the first row; rows is not modified.
func CorruptStrings(rows [][]string, missRate float64, s *sampling.Sampler, opts ...CorruptStringsOption) (orig, corrupted [][]string, k *mask.Mask, err error) {
	o := corruptStringsOptions{sentinel: DefaultSentinel}
	for _, opt := range opts {
		opt(&o)
	}

	if len(rows) == 0 {
		return nil, nil, nil, tabular.ErrEmpty
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, nil, nil, &tabular.ErrRaggedRows{Row: i, Expected: cols, Actual: len(row)}
		}
	}

	ind := s.Binary(1-missRate, len(rows), cols)
	k, _ = mask.FromMatrix(ind)

	orig = make([][]string, len(rows))
	corrupted = make([][]string, len(rows))
	for i, row := range rows {
		orig[i] = append([]string(nil), row...)
		corrupted[i] = append([]string(nil), row...)
		for j := 0; j < cols; j++ {
			if k.IsMissing(i, j) {
				corrupted[i][j] = o.sentinel
			}
		}
	}

	return orig, corrupted, k, nil
}
