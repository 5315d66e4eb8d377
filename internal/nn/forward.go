package nn

import (
	"github.com/born-ml/axon/internal/tensor"
)

// Trace is the sequence of bias-augmented activations of one forward pass.
//
// trace[0] is the encoded input and trace[len-1] the output layer; each
// entry has length width+1 and ends with the bias value 1.
type Trace[T tensor.Float] [][]T

// Output returns the last activation.
func (tr Trace[T]) Output() []T {
	return tr[len(tr)-1]
}

// encode maps a raw vector into tanh space and appends the bias unit.
func encode[T tensor.Float](x []T) []T {
	out := make([]T, len(x)+1)
	for i, v := range x {
		out[i] = tensor.Tanh(v)
	}
	out[len(x)] = 1
	return out
}

// Forward evaluates the network and returns the activation of every layer.
//
// The input is encoded as tanh(input) followed by the bias unit. Each axon
// then maps a_k to a_{k+1} = tanh(W_k · a_k) on the real units; the bias
// unit is W_k's last row applied to a_k, which is exactly 1.
func (n *Network[T]) Forward(input []T) (Trace[T], error) {
	if err := checkLen("Forward", "input", n.InputSize(), len(input)); err != nil {
		return nil, err
	}
	return n.forward(input), nil
}

func (n *Network[T]) forward(input []T) Trace[T] {
	trace := make(Trace[T], 0, len(n.axons)+1)
	trace = append(trace, encode(input))

	for _, axon := range n.axons {
		z := axon.MulVec(trace[len(trace)-1])
		last := len(z) - 1
		for i := 0; i < last; i++ {
			z[i] = tensor.Tanh(z[i])
		}
		trace = append(trace, z)
	}
	return trace
}

// Run evaluates the network and decodes the output layer with atanh.
//
// Inputs are expected in (-1, 1). An output unit whose activation saturates
// at ±1 decodes to ±Inf; this is not reported as an error here (see CheckFinite).
func (n *Network[T]) Run(input []T) ([]T, error) {
	if err := checkLen("Run", "input", n.InputSize(), len(input)); err != nil {
		return nil, err
	}
	return n.run(input), nil
}

func (n *Network[T]) run(input []T) []T {
	out := n.forward(input).Output()
	return tensor.MapVec(tensor.DropBias(out), tensor.Atanh[T])
}

// Error returns the squared error Σ (Run(input)[i] - target[i])².
func (n *Network[T]) Error(input, target []T) (T, error) {
	if err := checkLen("Error", "input", n.InputSize(), len(input)); err != nil {
		return 0, err
	}
	if err := checkLen("Error", "target", n.OutputSize(), len(target)); err != nil {
		return 0, err
	}
	return tensor.SquaredDistance(n.run(input), target), nil
}

// CheckFinite returns ErrDomainViolation if any element of out is NaN or ±Inf.
func CheckFinite[T tensor.Float](out []T) error {
	for _, v := range out {
		if !tensor.IsFinite(v) {
			return ErrDomainViolation
		}
	}
	return nil
}
