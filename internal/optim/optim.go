// Package optim implements first-order parameter-update rules for training
// neural networks.
//
// This package provides:
//   - Rule interface: the calling convention shared by all update rules
//   - SGD: vanilla stochastic gradient descent
//   - Momentum: SGD with classical (heavy-ball) momentum
//   - Nesterov: SGD with Nesterov momentum
//   - RMSProp: adaptive per-element learning rates from a squared-gradient
//     moving average
//   - Adam: first/second moment estimation with bias correction
//
// Each rule is a plain value holding its hyperparameters; the running state
// a rule accumulates between steps (velocity, caches, moment estimates, step
// counter) lives in a separate per-parameter State record that the caller
// threads through consecutive Step calls.
//
// Example usage:
//
//	rule := optim.NewAdam(optim.AdamConfig{LR: 0.001})
//
//	var state *optim.State // nil: no prior state
//	for step := range steps {
//	    grad := computeGradient(w)
//	    w, state, err = rule.Step(w, grad, state)
//	    if err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"fmt"

	"github.com/stride-ml/stride/internal/tensor"
)

// Rule is the calling convention shared by all update rules.
//
// Step consumes the current parameter value w, the gradient dw of the loss
// with respect to w, and the running state accumulated by previous steps for
// the same parameter. It returns the next parameter value and the state to
// pass to the next call.
//
// Ownership: the rule owns the w buffer for the duration of the call and may
// mutate it in place; the returned tensor is the authoritative next value
// and the caller must not read the input buffer after the call. dw is
// read-only and never retained.
//
// Passing a nil state means "first step": the rule allocates fresh zeroed
// state shaped like w. Passing a state recorded against a different shape is
// rejected with an error. The same State must be reused across consecutive
// steps for state-carrying rules; handing in a fresh state resets the rule.
//
// Non-finite gradient values propagate arithmetically into the result; the
// rules never clamp or special-case them.
type Rule interface {
	Step(w, dw *tensor.Tensor, state *State) (*tensor.Tensor, *State, error)

	// LR returns the current learning rate.
	LR() float32

	// SetLR updates the learning rate. The rate is a plain scalar; any
	// scheduling policy lives with the caller.
	SetLR(lr float32)

	// Name returns the rule's registry name, e.g. "adam".
	Name() string
}

// State is the per-parameter running state of an update rule.
//
// One State belongs to exactly one (parameter, rule) pair. Fields a rule
// does not use stay nil; fields it does use are allocated on the first step
// and always match the parameter's shape afterwards. Step starts at 1 and
// counts the upcoming step, not the completed one.
//
// A State must be owned by a single goroutine; no two Step calls may touch
// the same record concurrently.
type State struct {
	Velocity *tensor.Tensor // momentum velocity accumulator
	Cache    *tensor.Tensor // squared-gradient moving average (RMSProp)
	M        *tensor.Tensor // first-moment estimate (Adam)
	V        *tensor.Tensor // second-moment estimate (Adam)
	Step     int            // step index before the next call (Adam)
}

// stateSpec declares which State fields a rule requires.
type stateSpec struct {
	velocity bool
	cache    bool
	moments  bool
	counter  bool
}

// resolveState fills the fields named by spec into state, allocating
// zero-filled tensors shaped like the parameter for missing arrays and
// starting the step counter at 1. Existing fields are left untouched.
//
// A nil state resolves to a fresh record. An existing array whose shape does
// not match the parameter's is rejected rather than silently reshaped.
func resolveState(state *State, shape tensor.Shape, spec stateSpec) (*State, error) {
	if state == nil {
		state = &State{}
	}
	ensure := func(field **tensor.Tensor, name string) error {
		if *field == nil {
			*field = tensor.Zeros(shape)
			return nil
		}
		if !(*field).Shape().Equal(shape) {
			return fmt.Errorf("state %s shape mismatch: have %v, parameter is %v",
				name, (*field).Shape(), shape)
		}
		return nil
	}
	if spec.velocity {
		if err := ensure(&state.Velocity, "velocity"); err != nil {
			return nil, err
		}
	}
	if spec.cache {
		if err := ensure(&state.Cache, "cache"); err != nil {
			return nil, err
		}
	}
	if spec.moments {
		if err := ensure(&state.M, "m"); err != nil {
			return nil, err
		}
		if err := ensure(&state.V, "v"); err != nil {
			return nil, err
		}
	}
	if spec.counter && state.Step == 0 {
		state.Step = 1
	}
	return state, nil
}

// checkShapes rejects a gradient whose shape differs from the parameter's.
func checkShapes(w, dw *tensor.Tensor) error {
	if !w.Shape().Equal(dw.Shape()) {
		return fmt.Errorf("gradient shape mismatch: parameter is %v, gradient is %v",
			w.Shape(), dw.Shape())
	}
	return nil
}
