// Package impute provides the post-processing and evaluation helpers of the
// imputation toolkit: categorical rounding of imputed values, RMSE scoring
// restricted to held-out cells, and missingness injection for building
// benchmark datasets.
//
//	s := sampling.New()
//	orig, corrupted, m := impute.Corrupt(x, 0.2, s)
//
//	// ... run an imputation model over corrupted ...
//
//	imputed = impute.Round(imputed, corrupted)
//	rmse, err := impute.RMSE(orig, imputed, m.Matrix())
//
// Rounding treats a column as categorical when its distinct observed value
// count in the original data is below DefaultCategoricalThreshold. RMSE is
// computed on min-max normalized data, with the imputed matrix scaled by the
// parameters fitted on the original so both share one scale.
package impute
