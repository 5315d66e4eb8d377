package nn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDataset(t *testing.T) {
	net, err := New[float32]([]int{2, 3, 1}, NewRand(1))
	require.NoError(t, err)

	valid := []Example[float32]{
		{Input: []float32{0.1, 0.2}, Target: []float32{0.5}},
		{Input: []float32{-0.1, 0.9}, Target: []float32{-0.5}},
	}
	assert.NoError(t, net.ValidateDataset(valid))

	assert.ErrorIs(t, net.ValidateDataset(nil), ErrEmptyDataset)

	bad := append([]Example[float32]{}, valid...)
	bad[1] = Example[float32]{Input: []float32{0.1, 0.2}, Target: []float32{0.5, 0.5}}
	err = net.ValidateDataset(bad)
	require.ErrorIs(t, err, ErrShapeMismatch)

	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "example 1", shapeErr.Op)
	assert.Equal(t, "target", shapeErr.What)
	assert.Equal(t, 1, shapeErr.Want)
	assert.Equal(t, 2, shapeErr.Got)
}
