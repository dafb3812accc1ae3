package tabular

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	rows, cols := m.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 5.0, m.At(1, 1))
}

func TestFromRows_Empty(t *testing.T) {
	_, err := FromRows(nil)
	require.ErrorIs(t, err, ErrEmpty)
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := FromRows([][]float64{
		{1, 2},
		{3},
	})

	var rr *ErrRaggedRows
	require.True(t, errors.As(err, &rr))
	assert.Equal(t, 1, rr.Row)
	assert.Equal(t, 2, rr.Expected)
	assert.Equal(t, 1, rr.Actual)
}

func TestMatrix_Missing(t *testing.T) {
	m := New(2, 2)
	m.SetMissing(0, 1)

	assert.True(t, m.IsMissing(0, 1))
	assert.False(t, m.IsMissing(0, 0))
	assert.True(t, math.IsNaN(m.At(0, 1)))
}

func TestMatrix_Clone(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	c.Set(0, 0, 99)

	assert.Equal(t, 1.0, m.At(0, 0), "clone must not alias the original")
	assert.Equal(t, 99.0, c.At(0, 0))
}

func TestMatrix_SameShape(t *testing.T) {
	a := New(2, 3)
	b := New(2, 3)
	c := New(3, 2)

	require.NoError(t, a.SameShape(b))

	err := a.SameShape(c)
	var sm *ErrShapeMismatch
	require.True(t, errors.As(err, &sm))
	assert.Equal(t, 2, sm.ExpectedRows)
	assert.Equal(t, 3, sm.ActualRows)
}

func TestMatrix_Equal_NaN(t *testing.T) {
	a := New(1, 2)
	b := New(1, 2)
	a.SetMissing(0, 0)
	b.SetMissing(0, 0)

	assert.True(t, a.Equal(b), "NaN should match NaN")

	b.Set(0, 0, 0)
	assert.False(t, a.Equal(b))
}

func TestMatrix_Col(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 4, 6}, m.Col(1))
}
