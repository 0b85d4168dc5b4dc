// Copyright 2025 Stride ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides first-order parameter-update rules for training
// neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: vanilla stochastic gradient descent
//   - Momentum: classical (heavy-ball) momentum
//   - Nesterov: Nesterov momentum via a single gradient evaluation
//   - RMSProp: adaptive per-element steps from a squared-gradient average
//   - Adam: moment estimation with bias correction
//   - Rule interface and a by-name registry for custom wiring
//
// Every rule shares one calling convention: Step takes the parameter, its
// gradient, and the per-parameter State from the previous call, and returns
// the next parameter value plus the State for the next call. A nil State
// means "first step".
//
// # Basic Usage
//
//	import (
//	    "github.com/stride-ml/stride/optim"
//	    "github.com/stride-ml/stride/tensor"
//	)
//
//	func main() {
//	    rule := optim.NewAdam(optim.AdamConfig{LR: 0.001})
//
//	    w, _ := tensor.FromSlice([]float32{1.0, 2.0}, tensor.Shape{2})
//	    var state *optim.State
//
//	    for step := 0; step < 1000; step++ {
//	        grad := computeGradient(w) // caller's loss/backprop
//	        var err error
//	        w, state, err = rule.Step(w, grad, state)
//	        if err != nil {
//	            log.Fatal(err)
//	        }
//	    }
//	}
//
// The training loop, the model, and loss computation stay outside this
// package; the rules only map (value, gradient, state) to the next
// (value, state).
package optim
