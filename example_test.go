package imputego_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/imputego/dataset"
	"github.com/hupe1980/imputego/impute"
	"github.com/hupe1980/imputego/sampling"
	"github.com/hupe1980/imputego/scale"
	"github.com/hupe1980/imputego/tabular"
)

// Example walks through the full support workflow around an imputation
// model: inject missingness, normalize, denormalize, round categorical
// columns and score the reconstruction.
func Example() {
	x, err := tabular.FromRows([][]float64{
		{0, 12.5},
		{1, 80.0},
		{2, 45.2},
		{1, 33.3},
	})
	if err != nil {
		log.Fatal(err)
	}

	s := sampling.New() // deterministic: reseeds before every draw
	orig, corrupted, m := impute.Corrupt(x, 0.25, s)

	norm, params := scale.Normalize(corrupted)

	// An imputation model would fill the NaN cells of norm here.
	imputed, err := scale.Denormalize(norm, params.Bounds())
	if err != nil {
		log.Fatal(err)
	}
	imputed = impute.Round(imputed, corrupted)

	rmse, err := impute.RMSE(orig, imputed, m.Matrix())
	if err != nil {
		log.Fatal(err)
	}
	_ = rmse

	if err := dataset.AppendFile("/tmp/imputed.hap", imputed); err != nil {
		log.Fatal(err)
	}

	fmt.Println("done")
}
