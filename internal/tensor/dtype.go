// Package tensor provides the numeric element contract and the dense
// matrix type used by the axon network engine.
package tensor

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is the constraint for network weights and activations.
//
// Both precisions support ordered field arithmetic through the Go operators.
// Transcendental functions are provided by Tanh and Atanh, which dispatch
// on the concrete type so float32 values never round-trip through float64.
type Float interface {
	float32 | float64
}

// DataType represents runtime type information for matrices.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// DataTypeOf returns the DataType of T.
func DataTypeOf[T Float]() DataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	default:
		return Float64
	}
}

// Tanh returns the hyperbolic tangent of x.
func Tanh[T Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Tanh(v))
	default:
		return T(math.Tanh(float64(x)))
	}
}

// Atanh returns the inverse hyperbolic tangent of x.
//
// Atanh(±1) = ±Inf and Atanh(x) = NaN for |x| > 1.
func Atanh[T Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Atanh(v))
	default:
		return T(math.Atanh(float64(x)))
	}
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite[T Float](x T) bool {
	switch v := any(x).(type) {
	case float32:
		return !math32.IsNaN(v) && !math32.IsInf(v, 0)
	default:
		f := float64(x)
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
}
