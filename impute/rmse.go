package impute

import (
	"math"

	"github.com/hupe1980/imputego/scale"
	"github.com/hupe1980/imputego/tabular"
)

// RMSE computes the root mean squared error between ori and imputed,
// restricted to the cells m marks as missing (entries where m == 0).
//
// Both matrices are min-max normalized with parameters fitted on ori, so the
// imputed matrix is never independently fitted and errors are comparable
// across features. If m marks no cell missing the denominator is zero and
// the result is NaN; guaranteeing at least one missing cell is the caller's
// responsibility.
func RMSE(ori, imputed, m *tabular.Matrix) (float64, error) {
	if err := ori.SameShape(imputed); err != nil {
		return 0, err
	}
	if err := ori.SameShape(m); err != nil {
		return 0, err
	}

	oriNorm, params := scale.Normalize(ori)
	impNorm, err := scale.NormalizeWith(imputed, params)
	if err != nil {
		return 0, err
	}

	rows, cols := ori.Dims()
	var nominator, denominator float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			w := 1 - m.At(i, j)
			d := w * (oriNorm.At(i, j) - impNorm.At(i, j))
			nominator += d * d
			denominator += w
		}
	}

	return math.Sqrt(nominator / denominator), nil
}
