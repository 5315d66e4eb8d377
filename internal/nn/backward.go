package nn

import (
	"fmt"

	"github.com/born-ml/axon/internal/tensor"
)

// Gradients computes the weight-update masks for a single training example.
//
// The target is encoded into tanh space like the input. Walking the layers
// from last to first, the error signal is
//
//	δ_L = (1 - a_L²) ⊙ (a_L - tanh(target))
//	δ_k = (1 - a_k²) ⊙ (W_kᵀ · δ_{k+1})
//
// and the mask for the axon feeding layer k is -lr · δ_k ⊗ a_{k-1}.
//
// Masks are returned in reverse layer order: masks[0] belongs to the last
// axon. The bias unit has activation 1, so its δ and mask row are zero.
func (n *Network[T]) Gradients(input, target []T, lr T) ([]*tensor.Matrix[T], error) {
	if err := checkLen("Gradients", "input", n.InputSize(), len(input)); err != nil {
		return nil, err
	}
	if err := checkLen("Gradients", "target", n.OutputSize(), len(target)); err != nil {
		return nil, err
	}

	trace := n.forward(input)
	want := encode(target)

	masks := make([]*tensor.Matrix[T], 0, len(n.axons))
	var delta []T
	for i := len(n.axons) - 1; i >= 0; i-- {
		a := trace[i+1]

		var upstream []T
		if i == len(n.axons)-1 {
			upstream = make([]T, len(a))
			for j := range a {
				upstream[j] = a[j] - want[j]
			}
		} else {
			upstream = n.axons[i+1].MulVecT(delta)
		}

		next := make([]T, len(a))
		for j, v := range a {
			next[j] = (1 - v*v) * upstream[j]
		}
		delta = next

		masks = append(masks, tensor.Outer(delta, trace[i], -lr))
	}

	return masks, nil
}

// ApplyGradients adds masks produced by Gradients into the weights.
//
// masks must be in the order Gradients returns them. Only the rows of real
// units are updated; bias rows keep their [0 … 0 1] value.
func (n *Network[T]) ApplyGradients(masks []*tensor.Matrix[T]) error {
	if len(masks) != len(n.axons) {
		return fmt.Errorf("ApplyGradients: got %d masks for %d axons: %w", len(masks), len(n.axons), ErrShapeMismatch)
	}
	for k, axon := range n.axons {
		mask := masks[len(masks)-1-k]
		if !mask.Shape().Equal(axon.Shape()) {
			return fmt.Errorf("ApplyGradients: mask %v for axon %d of shape %v: %w",
				mask.Shape(), k, axon.Shape(), ErrShapeMismatch)
		}
	}

	for k, axon := range n.axons {
		axon.AddRowsInPlace(masks[len(masks)-1-k], axon.Rows()-1)
	}
	return nil
}
