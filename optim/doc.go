// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the training coordinator for axon networks.
//
// # Overview
//
// Training is whole-dataset gradient descent. Each epoch computes the
// gradient masks of every example in parallel against the current weights,
// waits for all of them, adds their sum into the weights, then measures the
// mean squared error over the dataset.
//
// # Basic Usage
//
//	net, _ := nn.New[float32]([]int{2, 10, 20, 30, 20, 10, 4}, nn.NewRand(42))
//	data := []nn.Example[float32]{
//	    {Input: []float32{0, 0}, Target: []float32{1, 0, 0, 0}},
//	    {Input: []float32{0, 1}, Target: []float32{0, 1, 0, 0}},
//	    {Input: []float32{1, 0}, Target: []float32{0, 0, 1, 0}},
//	    {Input: []float32{1, 1}, Target: []float32{0, 0, 0, 1}},
//	}
//
//	cfg := optim.DefaultConfig()
//	cfg.MaxIterations = 100000
//	result, err := optim.NewTrainer(net, cfg).Train(0.01, data)
//
// # Termination
//
// Train stops with [Converged] once the mean error reaches the target,
// with [MaxIterationsReached] when Config.MaxIterations is set and hit, and
// with [Diverged] when Config.StopOnNonFinite is set and the error becomes
// NaN or ±Inf. With MaxIterations left at 0 an unreachable target loops
// forever.
package optim
