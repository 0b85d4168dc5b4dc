package optim

import (
	"path/filepath"
	"testing"

	"github.com/stride-ml/stride/internal/tensor"
)

// TestResolveState_FillsDefaults checks lazy initialization of the state
// fields a rule declares.
func TestResolveState_FillsDefaults(t *testing.T) {
	shape := tensor.Shape{2, 3}

	state, err := resolveState(nil, shape, stateSpec{velocity: true})
	if err != nil {
		t.Fatalf("resolveState failed: %v", err)
	}
	if state.Velocity == nil || !state.Velocity.Shape().Equal(shape) {
		t.Fatal("velocity not allocated with the parameter shape")
	}
	for _, v := range state.Velocity.Data() {
		if v != 0 {
			t.Fatal("velocity not zero-filled")
		}
	}
	if state.Cache != nil || state.M != nil || state.V != nil {
		t.Error("resolver allocated fields the rule did not declare")
	}
	if state.Step != 0 {
		t.Errorf("counter set without being declared: %d", state.Step)
	}

	state, err = resolveState(nil, shape, stateSpec{moments: true, counter: true})
	if err != nil {
		t.Fatalf("resolveState failed: %v", err)
	}
	if state.M == nil || state.V == nil {
		t.Fatal("moment buffers not allocated")
	}
	if state.Step != 1 {
		t.Errorf("counter default: got %d, want 1", state.Step)
	}
}

// TestResolveState_KeepsExisting checks existing fields are left untouched.
func TestResolveState_KeepsExisting(t *testing.T) {
	shape := tensor.Shape{2}
	existing, err := tensor.FromSlice([]float32{1, 2}, shape)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	state := &State{Velocity: existing, Step: 7}
	resolved, err := resolveState(state, shape, stateSpec{velocity: true, counter: true})
	if err != nil {
		t.Fatalf("resolveState failed: %v", err)
	}
	if resolved != state {
		t.Error("resolver returned a different record")
	}
	if resolved.Velocity != existing {
		t.Error("resolver replaced an existing velocity")
	}
	if resolved.Step != 7 {
		t.Errorf("resolver reset the counter: got %d, want 7", resolved.Step)
	}
}

// TestResolveState_RejectsWrongShape checks shape validation of existing
// state arrays.
func TestResolveState_RejectsWrongShape(t *testing.T) {
	wrong := tensor.Zeros(tensor.Shape{3})
	state := &State{Cache: wrong}
	if _, err := resolveState(state, tensor.Shape{2}, stateSpec{cache: true}); err == nil {
		t.Error("resolver accepted a cache with the wrong shape")
	}
}

// TestStateDict_RoundTrip checks export/import through a state dict and
// that a restored state continues a run identically.
func TestStateDict_RoundTrip(t *testing.T) {
	rule := NewAdam(AdamConfig{LR: 0.01})

	w, _ := tensor.FromSlice([]float32{1.0, -1.0}, tensor.Shape{2})
	dw, _ := tensor.FromSlice([]float32{0.5, 0.25}, tensor.Shape{2})

	var state *State
	var err error
	for i := 0; i < 2; i++ {
		w, state, err = rule.Step(w, dw, state)
		if err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}

	restored := &State{}
	if err := restored.LoadStateDict(state.StateDict()); err != nil {
		t.Fatalf("LoadStateDict failed: %v", err)
	}
	if restored.Step != state.Step {
		t.Errorf("restored counter: got %d, want %d", restored.Step, state.Step)
	}

	// Continuing from the restored state must match continuing the original.
	wa := w.Clone()
	wb := w.Clone()
	wa, state, err = rule.Step(wa, dw, state)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	wb, restored, err = rule.Step(wb, dw, restored)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	for i := range wa.Data() {
		if wa.Data()[i] != wb.Data()[i] {
			t.Errorf("restored run diverged at element %d: %f vs %f",
				i, wa.Data()[i], wb.Data()[i])
		}
	}
}

// TestLoadStateDict_RejectsWrongShape checks shape validation on import.
func TestLoadStateDict_RejectsWrongShape(t *testing.T) {
	state := &State{Velocity: tensor.Zeros(tensor.Shape{2})}
	dict := map[string]*tensor.Tensor{
		"velocity": tensor.Zeros(tensor.Shape{3}),
	}
	if err := state.LoadStateDict(dict); err == nil {
		t.Error("LoadStateDict accepted a wrong-shape velocity")
	}
}

// TestSaveLoadState checks the file snapshot round trip.
func TestSaveLoadState(t *testing.T) {
	rule := NewRMSProp(RMSPropConfig{LR: 0.01})

	w, _ := tensor.FromSlice([]float32{2.0}, tensor.Shape{1})
	dw, _ := tensor.FromSlice([]float32{1.0}, tensor.Shape{1})

	_, state, err := rule.Step(w, dw, nil)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "state.strd")
	if err := SaveState(path, state); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
	loaded, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if loaded.Cache == nil {
		t.Fatal("loaded state has no cache")
	}
	if got, want := loaded.Cache.Data()[0], state.Cache.Data()[0]; got != want {
		t.Errorf("loaded cache: got %f, want %f", got, want)
	}
}
