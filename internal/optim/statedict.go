package optim

import (
	"fmt"

	"github.com/stride-ml/stride/internal/tensor"
)

// State dict keys. The step counter rides along as a one-element tensor so
// the whole state serializes through a single map.
const (
	keyVelocity = "velocity"
	keyCache    = "cache"
	keyM        = "m"
	keyV        = "v"
	keyStep     = "step"
)

// StateDict exports the state for serialization.
//
// Only populated fields appear in the map; the tensors are deep copies, so
// later steps do not mutate the exported dict.
func (s *State) StateDict() map[string]*tensor.Tensor {
	dict := make(map[string]*tensor.Tensor)
	if s.Velocity != nil {
		dict[keyVelocity] = s.Velocity.Clone()
	}
	if s.Cache != nil {
		dict[keyCache] = s.Cache.Clone()
	}
	if s.M != nil {
		dict[keyM] = s.M.Clone()
	}
	if s.V != nil {
		dict[keyV] = s.V.Clone()
	}
	if s.Step != 0 {
		step := tensor.Zeros(tensor.Shape{1})
		step.Data()[0] = float32(s.Step)
		dict[keyStep] = step
	}
	return dict
}

// LoadStateDict restores the state from a serialized dict.
//
// Entries replace the corresponding fields; keys absent from the dict leave
// their fields untouched, so a partially trained state can be resumed.
// Returns an error if an entry's shape disagrees with the field it replaces.
func (s *State) LoadStateDict(dict map[string]*tensor.Tensor) error {
	load := func(field **tensor.Tensor, key string) error {
		t, ok := dict[key]
		if !ok {
			return nil
		}
		if *field != nil && !(*field).Shape().Equal(t.Shape()) {
			return fmt.Errorf("state %s shape mismatch: expected %v, got %v",
				key, (*field).Shape(), t.Shape())
		}
		*field = t.Clone()
		return nil
	}
	if err := load(&s.Velocity, keyVelocity); err != nil {
		return err
	}
	if err := load(&s.Cache, keyCache); err != nil {
		return err
	}
	if err := load(&s.M, keyM); err != nil {
		return err
	}
	if err := load(&s.V, keyV); err != nil {
		return err
	}
	if step, ok := dict[keyStep]; ok {
		if step.NumElements() != 1 {
			return fmt.Errorf("state step must be a single element, got shape %v", step.Shape())
		}
		s.Step = int(step.Data()[0])
	}
	return nil
}
