// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/axon/internal/nn"
	"github.com/born-ml/axon/internal/optim"
	"github.com/born-ml/axon/internal/tensor"
)

// Trainer drives whole-dataset gradient descent on a network.
type Trainer[T tensor.Float] = optim.Trainer[T]

// Config holds trainer configuration.
type Config = optim.Config

// Result describes how a training run terminated.
type Result[T tensor.Float] = optim.Result[T]

// Outcome is the terminal state of a training run.
type Outcome = optim.Outcome

// Training outcomes.
const (
	Iterating            = optim.Iterating
	Converged            = optim.Converged
	MaxIterationsReached = optim.MaxIterationsReached
	Diverged             = optim.Diverged
)

// DefaultLR is the learning rate used when Config.LR is zero.
const DefaultLR = optim.DefaultLR

// ErrInvalidTarget is returned by Train for a negative or non-finite target error.
var ErrInvalidTarget = optim.ErrInvalidTarget

// DefaultConfig returns the default trainer configuration.
func DefaultConfig() Config {
	return optim.DefaultConfig()
}

// NewTrainer creates a trainer that mutates net in place.
//
// Example:
//
//	trainer := optim.NewTrainer(net, optim.Config{LR: 0.01, MaxIterations: 5000})
//	result, err := trainer.Train(0.01, data)
func NewTrainer[T tensor.Float](net *nn.Network[T], config Config) *Trainer[T] {
	return optim.NewTrainer(net, config)
}
