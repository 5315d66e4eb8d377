package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixFromFunc(t *testing.T) {
	m := MatrixFromFunc[float64](2, 3, func(i, j int) float64 {
		return float64(i*10 + j)
	})

	assert.Equal(t, Shape{2, 3}, m.Shape())
	assert.Equal(t, 12.0, m.At(1, 2))
	assert.Equal(t, []float64{10, 11, 12}, m.Row(1))
	assert.Equal(t, Float64, m.DType())
}

func TestNewMatrix_InvalidShape(t *testing.T) {
	assert.Panics(t, func() { NewMatrix[float32](0, 3) })
	assert.Panics(t, func() { NewMatrix[float32](2, -1) })
}

func TestMatrixMulVec(t *testing.T) {
	// [1 2 3]   [1]   [14]
	// [4 5 6] · [2] = [32]
	//           [3]
	m := MatrixFromFunc[float32](2, 3, func(i, j int) float32 {
		return float32(i*3 + j + 1)
	})

	out := m.MulVec([]float32{1, 2, 3})
	assert.Equal(t, []float32{14, 32}, out)

	assert.Panics(t, func() { m.MulVec([]float32{1, 2}) })
}

func TestMatrixMulVecT(t *testing.T) {
	m := MatrixFromFunc[float64](2, 3, func(i, j int) float64 {
		return float64(i*3 + j + 1)
	})

	// [1 4]         [9 ]
	// [2 5] · [1] = [12]
	// [3 6]   [2]   [15]
	out := m.MulVecT([]float64{1, 2})
	assert.Equal(t, []float64{9, 12, 15}, out)

	// Must agree with the explicit transpose through gonum.
	dense := m.Dense()
	for j := 0; j < 3; j++ {
		want := dense.At(0, j)*1 + dense.At(1, j)*2
		assert.InDelta(t, want, out[j], 1e-12)
	}

	assert.Panics(t, func() { m.MulVecT([]float64{1, 2, 3}) })
}

func TestOuter(t *testing.T) {
	m := Outer([]float64{1, 0, -2}, []float64{3, 4}, -0.5)

	require.Equal(t, Shape{3, 2}, m.Shape())
	assert.Equal(t, []float64{-1.5, -2}, m.Row(0))
	assert.Equal(t, []float64{0, 0}, m.Row(1))
	assert.Equal(t, []float64{3, 4}, m.Row(2))
}

func TestAddRowsInPlace(t *testing.T) {
	m := NewMatrix[float64](3, 2)
	delta := MatrixFromFunc[float64](3, 2, func(_, _ int) float64 { return 1 })

	m.AddRowsInPlace(delta, 2)

	assert.Equal(t, []float64{1, 1}, m.Row(0))
	assert.Equal(t, []float64{1, 1}, m.Row(1))
	assert.Equal(t, []float64{0, 0}, m.Row(2), "rows past n must stay untouched")

	assert.Panics(t, func() { m.AddRowsInPlace(NewMatrix[float64](2, 2), 1) })
	assert.Panics(t, func() { m.AddRowsInPlace(delta, 4) })
}

func TestMatrixCloneIsDeep(t *testing.T) {
	m := MatrixFromFunc[float32](2, 2, func(i, j int) float32 { return float32(i + j) })
	c := m.Clone()
	require.True(t, m.Equal(c))

	c.Set(0, 0, 42)
	assert.Equal(t, float32(0), m.At(0, 0))
	assert.False(t, m.Equal(c))
}

func TestMatrixIndexOutOfRange(t *testing.T) {
	m := NewMatrix[float64](2, 2)
	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.Set(0, -1, 1) })
}

func TestMatrixString(t *testing.T) {
	m := MatrixFromFunc[float64](2, 2, func(i, j int) float64 { return float64(i*2 + j) })
	s := m.String()
	assert.Contains(t, s, "0")
	assert.Contains(t, s, "3")
}

func TestTanhAtanh(t *testing.T) {
	for _, x := range []float64{-0.9, -0.5, 0, 0.25, 0.75} {
		assert.InDelta(t, x, Atanh(Tanh(x)), 1e-12)
		assert.InDelta(t, float32(x), Atanh(Tanh(float32(x))), 1e-5)
		assert.InDelta(t, math.Tanh(x), float64(Tanh(float32(x))), 1e-6)
	}
}

func TestAtanhSingularity(t *testing.T) {
	assert.True(t, math.IsInf(Atanh(1.0), 1))
	assert.True(t, math.IsInf(Atanh(-1.0), -1))
	assert.False(t, IsFinite(Atanh(float32(1))))
	assert.False(t, IsFinite(Atanh(float32(1.5))), "atanh outside [-1, 1] is NaN")
	assert.True(t, IsFinite(Atanh(float32(0.5))))
}

func TestDataType(t *testing.T) {
	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Float64, DataTypeOf[float64]())
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 8, Float64.Size())
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "unknown", DataType(99).String())
}

func TestShape(t *testing.T) {
	assert.NoError(t, Shape{3, 4}.Validate())
	assert.Error(t, Shape{3}.Validate())
	assert.Error(t, Shape{3, 0}.Validate())
	assert.Equal(t, 12, Shape{3, 4}.NumElements())
	assert.Equal(t, "3×4", Shape{3, 4}.String())

	s := Shape{1, 2}
	c := s.Clone()
	c[0] = 9
	assert.False(t, s.Equal(c))
}

func TestVectorHelpers(t *testing.T) {
	x := []float64{0.5, -0.25}

	withBias := AppendBias(x)
	assert.Equal(t, []float64{0.5, -0.25, 1}, withBias)
	assert.Equal(t, x, DropBias(withBias))
	assert.Len(t, x, 2, "AppendBias must not modify its input")

	doubled := MapVec(x, func(v float64) float64 { return 2 * v })
	assert.Equal(t, []float64{1, -0.5}, doubled)

	assert.InDelta(t, 0.25+0.0625, SquaredDistance(x, []float64{0, 0}), 1e-12)

	assert.Equal(t, 2, ArgMax([]float32{0.1, -3, 0.9, 0.2}))
	assert.Equal(t, 1, ArgMax([]float64{math.NaN(), 0.3}))
	assert.Equal(t, -1, ArgMax([]float64{}))
}
