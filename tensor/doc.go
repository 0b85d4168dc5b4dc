// Copyright 2025 Stride ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the dense float32 arrays used
// by the update rules.
//
// A Tensor is a contiguous row-major buffer with a fixed Shape. Buffers are
// exclusively owned: the update rules may mutate a parameter tensor in
// place, and no tensor may be shared between concurrent users.
//
// Example:
//
//	w, err := tensor.FromSlice([]float32{1.0, 2.0}, tensor.Shape{2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	grad := tensor.ZerosLike(w)
package tensor
