package nn

import (
	"math/rand"

	"github.com/born-ml/axon/internal/tensor"
)

// NewRand returns a deterministic random source for weight initialization.
//
// A negative seed yields a randomly seeded source.
func NewRand(seed int64) *rand.Rand {
	if seed < 0 {
		return rand.New(rand.NewSource(rand.Int63())) //nolint:gosec // Weight initialization is not security-critical
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // Intentional deterministic seed for reproducibility
}

// Uniform fills the non-bias rows of a bias-augmented axon with values drawn
// from U(-1, 1) and sets the bias row to [0 … 0 1].
//
// Parameters:
//   - in: Width of the source layer (without bias)
//   - out: Width of the destination layer (without bias)
//   - rng: Random source; values are consumed in row-major order
//
// Returns a matrix of shape (out+1) × (in+1).
func Uniform[T tensor.Float](in, out int, rng *rand.Rand) *tensor.Matrix[T] {
	return tensor.MatrixFromFunc(out+1, in+1, func(i, j int) T {
		if i < out {
			return T(rng.Float64()*2.0 - 1.0)
		}
		if j < in {
			return 0
		}
		return 1
	})
}
