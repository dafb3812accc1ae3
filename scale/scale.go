package scale

import (
	"fmt"
	"math"

	"github.com/hupe1980/imputego/tabular"
)

// Epsilon is the additive guard used in every division so constant
// (zero-variance) columns never divide by zero.
const Epsilon = 1e-6

// Params holds the fitted per-column extrema of a Normalize call.
// Thread the value through to NormalizeWith or Denormalize to keep
// several matrices on a common scale.
type Params struct {
	Min []float64
	Max []float64
}

// Bounds carries denormalization extrema, either one pair per column or a
// single pair broadcast across all columns. Construct with PerColumn or
// Scalar; the zero value is not valid.
type Bounds struct {
	perColumn  bool
	min, max   []float64
	sMin, sMax float64
}

// PerColumn returns Bounds with one min/max pair per feature.
func PerColumn(min, max []float64) Bounds {
	return Bounds{perColumn: true, min: min, max: max}
}

// Scalar returns Bounds that broadcast a single min/max pair across all columns.
func Scalar(min, max float64) Bounds {
	return Bounds{sMin: min, sMax: max}
}

// ErrBoundsLength indicates per-column bounds whose length does not match
// the matrix column count.
type ErrBoundsLength struct {
	Cols int
	Len  int
}

func (e *ErrBoundsLength) Error() string {
	return fmt.Sprintf("bounds length %d does not match %d columns", e.Len, e.Cols)
}

// Bounds adapts fitted params into per-column denormalization bounds.
func (p Params) Bounds() Bounds {
	return PerColumn(p.Min, p.Max)
}

// Normalize min-max scales each column of data to [0, 1] based on its
// observed (non-NaN) extrema and returns the fitted parameters.
// The input is not modified; NaN entries stay NaN in the output.
// A column with no observed values gets NaN parameters and stays all-NaN.
func Normalize(data *tabular.Matrix) (*tabular.Matrix, Params) {
	rows, cols := data.Dims()
	norm := data.Clone()

	p := Params{
		Min: make([]float64, cols),
		Max: make([]float64, cols),
	}

	for j := 0; j < cols; j++ {
		minV, maxV := nanExtrema(data, j)
		p.Min[j] = minV
		p.Max[j] = maxV

		for i := 0; i < rows; i++ {
			v := norm.At(i, j)
			norm.Set(i, j, (v-minV)/(maxV-minV+Epsilon))
		}
	}

	return norm, p
}

// NormalizeWith applies previously fitted parameters to data, keeping it on
// the same scale as the matrix the parameters were fitted on. The supplied
// parameters are used as-is; calling twice with equal params yields
// identical output.
func NormalizeWith(data *tabular.Matrix, p Params) (*tabular.Matrix, error) {
	rows, cols := data.Dims()
	if len(p.Min) != cols || len(p.Max) != cols {
		n := len(p.Min)
		if len(p.Max) != len(p.Min) {
			n = len(p.Max)
		}
		return nil, &ErrBoundsLength{Cols: cols, Len: n}
	}

	norm := data.Clone()
	for j := 0; j < cols; j++ {
		minV, maxV := p.Min[j], p.Max[j]
		for i := 0; i < rows; i++ {
			v := norm.At(i, j)
			norm.Set(i, j, (v-minV)/(maxV-minV+Epsilon))
		}
	}

	return norm, nil
}

// Denormalize inverts a min-max transform: v*(max-min+eps)+min per column.
// Bounds may be per-column vectors or a scalar pair broadcast across all
// columns. The input is not modified.
func Denormalize(norm *tabular.Matrix, b Bounds) (*tabular.Matrix, error) {
	rows, cols := norm.Dims()

	if b.perColumn && (len(b.min) != cols || len(b.max) != cols) {
		n := len(b.min)
		if len(b.max) != len(b.min) {
			n = len(b.max)
		}
		return nil, &ErrBoundsLength{Cols: cols, Len: n}
	}

	out := norm.Clone()
	for j := 0; j < cols; j++ {
		minV, maxV := b.sMin, b.sMax
		if b.perColumn {
			minV, maxV = b.min[j], b.max[j]
		}
		for i := 0; i < rows; i++ {
			v := out.At(i, j)
			out.Set(i, j, v*(maxV-minV+Epsilon)+minV)
		}
	}

	return out, nil
}

// nanExtrema returns the min and max over the observed entries of column j.
// Returns (NaN, NaN) if every entry is missing.
func nanExtrema(m *tabular.Matrix, j int) (minV, maxV float64) {
	rows, _ := m.Dims()
	minV, maxV = math.Inf(1), math.Inf(-1)
	observed := false

	for i := 0; i < rows; i++ {
		v := m.At(i, j)
		if math.IsNaN(v) {
			continue
		}
		observed = true
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	if !observed {
		return math.NaN(), math.NaN()
	}
	return minV, maxV
}
