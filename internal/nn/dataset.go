package nn

import (
	"fmt"

	"github.com/born-ml/axon/internal/tensor"
)

// Example is one training pair: an input of InputSize values and a target
// of OutputSize values, both expected in (-1, 1).
type Example[T tensor.Float] struct {
	Input  []T
	Target []T
}

// ValidateDataset checks that data is non-empty and every example matches
// the network's input and output widths.
func (n *Network[T]) ValidateDataset(data []Example[T]) error {
	if len(data) == 0 {
		return ErrEmptyDataset
	}
	for i, ex := range data {
		op := fmt.Sprintf("example %d", i)
		if err := checkLen(op, "input", n.InputSize(), len(ex.Input)); err != nil {
			return err
		}
		if err := checkLen(op, "target", n.OutputSize(), len(ex.Target)); err != nil {
			return err
		}
	}
	return nil
}
