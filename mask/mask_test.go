package mask

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/imputego/tabular"
)

func TestFromMatrix_RoundTrip(t *testing.T) {
	ind, err := tabular.FromRows([][]float64{
		{1, 0, 1},
		{0, 1, 1},
	})
	require.NoError(t, err)

	k, err := FromMatrix(ind)
	require.NoError(t, err)

	assert.Equal(t, uint64(2), k.MissingCount())
	assert.Equal(t, uint64(4), k.ObservedCount())
	assert.True(t, k.IsMissing(0, 1))
	assert.True(t, k.IsMissing(1, 0))
	assert.False(t, k.IsMissing(0, 0))

	assert.True(t, k.Matrix().Equal(ind))
}

func TestFromMatrix_NotBinary(t *testing.T) {
	ind, err := tabular.FromRows([][]float64{{0.5}})
	require.NoError(t, err)

	_, err = FromMatrix(ind)

	var nb *ErrNotBinary
	require.True(t, errors.As(err, &nb))
	assert.Equal(t, 0.5, nb.Value)
}

func TestMask_SetMissing(t *testing.T) {
	k := New(2, 2)
	assert.Equal(t, uint64(0), k.MissingCount())

	k.SetMissing(1, 1)
	assert.True(t, k.IsMissing(1, 1))
	assert.Equal(t, uint64(1), k.MissingCount())
}

func TestMask_Bytes(t *testing.T) {
	k := New(3, 4)
	k.SetMissing(0, 3)
	k.SetMissing(2, 1)

	data, err := k.ToBytes()
	require.NoError(t, err)

	back, err := FromBytes(3, 4, data)
	require.NoError(t, err)

	assert.Equal(t, uint64(2), back.MissingCount())
	assert.True(t, back.IsMissing(0, 3))
	assert.True(t, back.IsMissing(2, 1))
	assert.True(t, back.Matrix().Equal(k.Matrix()))
}

func TestMask_Clone(t *testing.T) {
	k := New(2, 2)
	k.SetMissing(0, 0)

	c := k.Clone()
	c.SetMissing(1, 1)

	assert.Equal(t, uint64(1), k.MissingCount())
	assert.Equal(t, uint64(2), c.MissingCount())
}
