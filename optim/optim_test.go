// Copyright 2025 Stride ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim_test

import (
	"path/filepath"
	"testing"

	"github.com/stride-ml/stride/optim"
	"github.com/stride-ml/stride/tensor"
)

// TestPublicAPI_SGDStep runs the reference SGD step through the public
// surface.
func TestPublicAPI_SGDStep(t *testing.T) {
	w, err := tensor.FromSlice([]float32{1.0, 2.0}, tensor.Shape{2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	dw, err := tensor.FromSlice([]float32{0.1, -0.2}, tensor.Shape{2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	rule := optim.NewSGD(optim.SGDConfig{LR: 0.1})
	next, _, err := rule.Step(w, dw, nil)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	got := next.Data()
	if got[0] < 0.9899 || got[0] > 0.9901 || got[1] < 2.0199 || got[1] > 2.0201 {
		t.Errorf("SGD step: got [%f, %f], want [0.99, 2.02]", got[0], got[1])
	}
}

// TestPublicAPI_Registry constructs every rule by name.
func TestPublicAPI_Registry(t *testing.T) {
	names := []string{"sgd", "momentum", "nesterov", "rmsprop", "adam"}
	for _, name := range names {
		rule, err := optim.New(name, optim.Config{})
		if err != nil {
			t.Fatalf("New(%q) failed: %v", name, err)
		}
		if rule.Name() != name {
			t.Errorf("New(%q).Name() = %q", name, rule.Name())
		}
	}
	if _, err := optim.New("lbfgs", optim.Config{}); err == nil {
		t.Error("New accepted an unknown rule name")
	}
}

// TestPublicAPI_Snapshot saves and restores optimizer state across a
// simulated restart.
func TestPublicAPI_Snapshot(t *testing.T) {
	rule := optim.NewAdam(optim.AdamConfig{})

	w, _ := tensor.FromSlice([]float32{1.0}, tensor.Shape{1})
	dw, _ := tensor.FromSlice([]float32{0.5}, tensor.Shape{1})

	w, state, err := rule.Step(w, dw, nil)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "adam.strd")
	if err := optim.SaveState(path, state); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
	restored, err := optim.LoadState(path)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if restored.Step != state.Step {
		t.Errorf("restored counter: got %d, want %d", restored.Step, state.Step)
	}

	if _, _, err := rule.Step(w, dw, restored); err != nil {
		t.Fatalf("Step after restore failed: %v", err)
	}
}
