// Package nn implements the bias-augmented tanh feed-forward network:
// the weight store, the forward evaluator and the gradient computer.
package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/born-ml/axon/internal/tensor"
)

// Network is a fully connected feed-forward network with tanh activations.
//
// Every layer carries an extra bias unit of constant value 1. The network
// stores one axon (weight matrix) per layer transition; axon k has shape
// (layers[k+1]+1) × (layers[k]+1) and its last row is fixed to [0 … 0 1]
// so the bias unit passes through unchanged.
//
// Run, Forward, Error and Gradients only read the weights and are safe for
// concurrent use. ApplyGradients mutates them and must not overlap with any
// other call.
//
// Example:
//
//	net, err := nn.New[float32]([]int{2, 8, 4}, nn.NewRand(42))
//	if err != nil {
//	    return err
//	}
//	out, err := net.Run([]float32{0.1, -0.3})
type Network[T tensor.Float] struct {
	layers []int
	axons  []*tensor.Matrix[T]
}

// New creates a network with the given layer widths.
//
// layers must have at least two entries and every width must be ≥ 1.
// Non-bias weights are drawn uniformly from [-1, 1] using rng; a nil rng
// uses a randomly seeded source.
func New[T tensor.Float](layers []int, rng *rand.Rand) (*Network[T], error) {
	if len(layers) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 layers, got %d", ErrInvalidLayers, len(layers))
	}
	for i, w := range layers {
		if w < 1 {
			return nil, fmt.Errorf("%w: layer %d has width %d (must be ≥ 1)", ErrInvalidLayers, i, w)
		}
	}
	if rng == nil {
		rng = NewRand(-1)
	}

	axons := make([]*tensor.Matrix[T], 0, len(layers)-1)
	for k := 0; k+1 < len(layers); k++ {
		axons = append(axons, Uniform[T](layers[k], layers[k+1], rng))
	}

	widths := make([]int, len(layers))
	copy(widths, layers)

	return &Network[T]{
		layers: widths,
		axons:  axons,
	}, nil
}

// Layers returns a copy of the layer widths (without bias units).
func (n *Network[T]) Layers() []int {
	out := make([]int, len(n.layers))
	copy(out, n.layers)
	return out
}

// InputSize returns the width of the input layer.
func (n *Network[T]) InputSize() int {
	return n.layers[0]
}

// OutputSize returns the width of the output layer.
func (n *Network[T]) OutputSize() int {
	return n.layers[len(n.layers)-1]
}

// NumAxons returns the number of weight matrices, len(Layers())-1.
func (n *Network[T]) NumAxons() int {
	return len(n.axons)
}

// Axon returns a copy of weight matrix k.
func (n *Network[T]) Axon(k int) *tensor.Matrix[T] {
	return n.axons[k].Clone()
}

// Clone returns a deep copy of the network.
func (n *Network[T]) Clone() *Network[T] {
	axons := make([]*tensor.Matrix[T], len(n.axons))
	for i, a := range n.axons {
		axons[i] = a.Clone()
	}
	return &Network[T]{
		layers: n.Layers(),
		axons:  axons,
	}
}

// String summarizes the topology, e.g. "Network[float32](2-10-4)".
func (n *Network[T]) String() string {
	parts := make([]string, len(n.layers))
	for i, w := range n.layers {
		parts[i] = fmt.Sprint(w)
	}
	return fmt.Sprintf("Network[%s](%s)", tensor.DataTypeOf[T](), strings.Join(parts, "-"))
}
