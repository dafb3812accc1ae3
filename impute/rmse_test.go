package impute

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/imputego/tabular"
)

func TestRMSE_PerfectReconstruction(t *testing.T) {
	ori, err := tabular.FromRows([][]float64{{0, 0}, {1, 1}})
	require.NoError(t, err)
	imputed, err := tabular.FromRows([][]float64{{0, 0}, {1, 1}})
	require.NoError(t, err)
	m, err := tabular.FromRows([][]float64{{1, 1}, {0, 0}})
	require.NoError(t, err)

	rmse, err := RMSE(ori, imputed, m)
	require.NoError(t, err)

	assert.Equal(t, 0.0, rmse)
}

func TestRMSE_KnownError(t *testing.T) {
	// One missing cell, column domain [0, 10]. The imputed value misses by 5
	// raw, i.e. 5/(10+1e-6) normalized.
	ori, err := tabular.FromRows([][]float64{{0}, {10}})
	require.NoError(t, err)
	imputed, err := tabular.FromRows([][]float64{{0}, {5}})
	require.NoError(t, err)
	m, err := tabular.FromRows([][]float64{{1}, {0}})
	require.NoError(t, err)

	rmse, err := RMSE(ori, imputed, m)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, rmse, 1e-5)
}

func TestRMSE_OnlyMissingCellsCount(t *testing.T) {
	// The observed cell disagrees wildly but must not contribute.
	ori, err := tabular.FromRows([][]float64{{0}, {10}})
	require.NoError(t, err)
	imputed, err := tabular.FromRows([][]float64{{100}, {10}})
	require.NoError(t, err)
	m, err := tabular.FromRows([][]float64{{1}, {0}})
	require.NoError(t, err)

	rmse, err := RMSE(ori, imputed, m)
	require.NoError(t, err)

	assert.Equal(t, 0.0, rmse)
}

func TestRMSE_ShapeMismatch(t *testing.T) {
	ori := tabular.New(2, 2)
	imputed := tabular.New(2, 3)
	m := tabular.New(2, 2)

	_, err := RMSE(ori, imputed, m)

	var sm *tabular.ErrShapeMismatch
	require.True(t, errors.As(err, &sm))
}

func TestRMSE_NoMissingIsNaN(t *testing.T) {
	ori, err := tabular.FromRows([][]float64{{0}, {1}})
	require.NoError(t, err)
	m, err := tabular.FromRows([][]float64{{1}, {1}})
	require.NoError(t, err)

	rmse, err := RMSE(ori, ori.Clone(), m)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(rmse), "all-observed mask divides by zero; callers must avoid it")
}
