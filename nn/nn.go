// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/axon/internal/nn"
	"github.com/born-ml/axon/internal/tensor"
)

// Network is a feed-forward tanh network with bias-augmented axons.
type Network[T tensor.Float] = nn.Network[T]

// Example is one training pair.
type Example[T tensor.Float] = nn.Example[T]

// Trace is the per-layer activation sequence of one forward pass.
type Trace[T tensor.Float] = nn.Trace[T]

// ShapeError describes a vector whose length disagrees with the network.
type ShapeError = nn.ShapeError

// Errors returned by the network.
var (
	ErrInvalidLayers   = nn.ErrInvalidLayers
	ErrShapeMismatch   = nn.ErrShapeMismatch
	ErrDomainViolation = nn.ErrDomainViolation
	ErrEmptyDataset    = nn.ErrEmptyDataset
)

// New creates a network with the given layer widths.
//
// Example:
//
//	net, err := nn.New[float64]([]int{2, 10, 20, 4}, nn.NewRand(1))
func New[T tensor.Float](layers []int, rng *rand.Rand) (*Network[T], error) {
	return nn.New[T](layers, rng)
}

// NewRand returns a seeded random source for weight initialization.
// A negative seed yields a randomly seeded source.
func NewRand(seed int64) *rand.Rand {
	return nn.NewRand(seed)
}

// CheckFinite returns ErrDomainViolation if any element of out is NaN or ±Inf.
func CheckFinite[T tensor.Float](out []T) error {
	return nn.CheckFinite(out)
}
