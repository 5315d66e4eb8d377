package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense row-major 2-D matrix.
//
// Kernels panic on shape disagreement: callers at the API boundary are
// expected to validate shapes and report errors before reaching them.
type Matrix[T Float] struct {
	rows int
	cols int
	data []T
}

// NewMatrix creates a zero-filled matrix with the given dimensions.
func NewMatrix[T Float](rows, cols int) *Matrix[T] {
	if err := (Shape{rows, cols}).Validate(); err != nil {
		panic(fmt.Sprintf("NewMatrix: %v", err))
	}
	return &Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
}

// MatrixFromFunc creates a matrix whose element (i, j) is f(i, j).
func MatrixFromFunc[T Float](rows, cols int, f func(i, j int) T) *Matrix[T] {
	m := NewMatrix[T](rows, cols)
	for i := 0; i < rows; i++ {
		row := m.data[i*cols : (i+1)*cols]
		for j := range row {
			row[j] = f(i, j)
		}
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape returns {rows, cols}.
func (m *Matrix[T]) Shape() Shape { return Shape{m.rows, m.cols} }

// DType returns the element data type.
func (m *Matrix[T]) DType() DataType { return DataTypeOf[T]() }

// At returns element (i, j).
func (m *Matrix[T]) At(i, j int) T {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set assigns element (i, j).
func (m *Matrix[T]) Set(i, j int, v T) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = v
}

// Row returns a copy of row i.
func (m *Matrix[T]) Row(i int) []T {
	m.checkIndex(i, 0)
	row := make([]T, m.cols)
	copy(row, m.data[i*m.cols:(i+1)*m.cols])
	return row
}

// Clone returns a deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// Equal reports whether both matrices have the same shape and elements.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// MulVec computes m · x.
//
// x must have length Cols; the result has length Rows.
func (m *Matrix[T]) MulVec(x []T) []T {
	if len(x) != m.cols {
		panic(fmt.Sprintf("MulVec: matrix %v cannot multiply vector of length %d", m.Shape(), len(x)))
	}
	out := make([]T, m.rows)
	for i := range out {
		row := m.data[i*m.cols : (i+1)*m.cols]
		var sum T
		for j, w := range row {
			sum += w * x[j]
		}
		out[i] = sum
	}
	return out
}

// MulVecT computes mᵀ · x without materializing the transpose.
//
// x must have length Rows; the result has length Cols.
func (m *Matrix[T]) MulVecT(x []T) []T {
	if len(x) != m.rows {
		panic(fmt.Sprintf("MulVecT: transposed matrix %v cannot multiply vector of length %d", m.Shape(), len(x)))
	}
	out := make([]T, m.cols)
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j, w := range row {
			out[j] += w * xi
		}
	}
	return out
}

// Outer builds the matrix scale · (u ⊗ v), with element (i, j) = scale·u[i]·v[j].
func Outer[T Float](u, v []T, scale T) *Matrix[T] {
	m := NewMatrix[T](len(u), len(v))
	for i, ui := range u {
		s := scale * ui
		if s == 0 {
			continue
		}
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j, vj := range v {
			row[j] = s * vj
		}
	}
	return m
}

// AddRowsInPlace adds rows [0, n) of other into m. Rows at or past n are left untouched.
func (m *Matrix[T]) AddRowsInPlace(other *Matrix[T], n int) {
	if !m.Shape().Equal(other.Shape()) {
		panic(fmt.Sprintf("AddRowsInPlace: shape mismatch %v vs %v", m.Shape(), other.Shape()))
	}
	if n < 0 || n > m.rows {
		panic(fmt.Sprintf("AddRowsInPlace: row count %d out of range [0, %d]", n, m.rows))
	}
	dst := m.data[:n*m.cols]
	for i, v := range other.data[:n*m.cols] {
		dst[i] += v
	}
}

// Dense returns a gonum copy of the matrix, widened to float64.
func (m *Matrix[T]) Dense() *mat.Dense {
	data := make([]float64, len(m.data))
	for i, v := range m.data {
		data[i] = float64(v)
	}
	return mat.NewDense(m.rows, m.cols, data)
}

// String formats the matrix as a bracketed grid.
func (m *Matrix[T]) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.Dense(), mat.Squeeze()))
}

func (m *Matrix[T]) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("index (%d, %d) out of range for matrix %v", i, j, m.Shape()))
	}
}
