// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the bias-augmented tanh feed-forward network.
//
// # Overview
//
// A network is built from a list of layer widths. Every layer carries an
// extra bias unit of constant value 1, so the weights between two layers
// form a single (out+1) × (in+1) matrix (an axon) whose last row is fixed
// to [0 … 0 1].
//
// Inputs and targets live in (-1, 1): inputs are encoded with tanh on the
// way in and outputs are decoded with atanh on the way out. An output unit
// that saturates at ±1 decodes to ±Inf; Run does not report this, use
// [CheckFinite] or optim.Config.StopOnNonFinite when it matters.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/axon/nn"
//	    "github.com/born-ml/axon/optim"
//	)
//
//	func main() {
//	    net, err := nn.New[float32]([]int{2, 10, 4}, nn.NewRand(42))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, err := net.Run([]float32{0.5, -0.5})
//	}
//
// # Errors
//
// Length disagreements are reported synchronously as [*ShapeError], which
// matches [ErrShapeMismatch] under errors.Is. Invalid layer lists match
// [ErrInvalidLayers].
package nn
