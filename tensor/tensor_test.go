// Copyright 2025 Stride ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stride-ml/stride/tensor"
)

// TestPublicAPI verifies the public aliases expose the expected surface.
func TestPublicAPI(t *testing.T) {
	w, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if w.NumElements() != 3 {
		t.Errorf("NumElements() = %d, want 3", w.NumElements())
	}
	if !w.Shape().Equal(tensor.Shape{3}) {
		t.Errorf("Shape() = %v, want [3]", w.Shape())
	}

	z := tensor.ZerosLike(w)
	for _, v := range z.Data() {
		if v != 0 {
			t.Fatal("ZerosLike returned non-zero data")
		}
	}

	if _, err := tensor.New(tensor.Shape{0}); err == nil {
		t.Error("New accepted an invalid shape")
	}
}
