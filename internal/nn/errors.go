package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidLayers   = errors.New("invalid layer specification")
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrDomainViolation = errors.New("value outside the tanh domain: non-finite result")
	ErrEmptyDataset    = errors.New("empty dataset")
)

// ShapeError describes a vector or matrix whose size disagrees with the network.
type ShapeError struct {
	Op   string // Operation that rejected the value (e.g. "Run", "Gradients")
	What string // Which value was rejected (e.g. "input", "target")
	Want int    // Expected length
	Got  int    // Actual length
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s length %d, want %d: %v", e.Op, e.What, e.Got, e.Want, ErrShapeMismatch)
}

// Unwrap makes errors.Is(err, ErrShapeMismatch) hold for every ShapeError.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

func checkLen(op, what string, want, got int) error {
	if want != got {
		return &ShapeError{Op: op, What: what, Want: want, Got: got}
	}
	return nil
}
