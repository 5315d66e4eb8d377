// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the numeric element types and dense matrices of
// the axon network engine.
//
// # Overview
//
// Weights and activations are generic over [Float] (float32 or float64).
// Hyperbolic tangent and its inverse are provided per precision by [Tanh]
// and [Atanh]; float32 values are computed without widening to float64.
//
// # Matrices
//
// [Matrix] is a dense row-major matrix. The network stores one matrix per
// layer transition; callers normally only see copies returned by
// Network.Axon, which can be inspected directly or exported to gonum:
//
//	axon := net.Axon(0)
//	fmt.Println(axon.Shape())   // e.g. 11×3
//	dense := axon.Dense()       // *mat.Dense
package tensor
