// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/axon/internal/tensor"
)

// Float is the constraint for network weights and activations.
type Float = tensor.Float

// DataType represents the element type of a matrix at runtime.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents matrix dimensions as {rows, cols}.
type Shape = tensor.Shape

// Matrix is a dense row-major matrix.
type Matrix[T Float] = tensor.Matrix[T]

// NewMatrix creates a zero-filled matrix.
func NewMatrix[T Float](rows, cols int) *Matrix[T] {
	return tensor.NewMatrix[T](rows, cols)
}

// MatrixFromFunc creates a matrix whose element (i, j) is f(i, j).
func MatrixFromFunc[T Float](rows, cols int, f func(i, j int) T) *Matrix[T] {
	return tensor.MatrixFromFunc(rows, cols, f)
}

// DataTypeOf returns the DataType of T.
func DataTypeOf[T Float]() DataType {
	return tensor.DataTypeOf[T]()
}

// Tanh returns the hyperbolic tangent of x.
func Tanh[T Float](x T) T {
	return tensor.Tanh(x)
}

// Atanh returns the inverse hyperbolic tangent of x.
func Atanh[T Float](x T) T {
	return tensor.Atanh(x)
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite[T Float](x T) bool {
	return tensor.IsFinite(x)
}

// ArgMax returns the index of the largest element, or -1 for an empty vector.
func ArgMax[T Float](x []T) int {
	return tensor.ArgMax(x)
}
