package optim

import "github.com/stride-ml/stride/internal/tensor"

// Momentum implements stochastic gradient descent with classical
// (heavy-ball) momentum.
//
// Update rule:
//
//	v' = momentum * v - lr * dw
//	next_w = w + v'
//
// The velocity v is an exponential moving average of past gradients stored
// in the per-parameter State; it accelerates descent along consistent
// directions and dampens oscillations. Setting momentum = 0 reduces exactly
// to SGD.
type Momentum struct {
	lr       float32
	momentum float32
}

// MomentumConfig holds configuration for Momentum.
type MomentumConfig struct {
	LR       float32 // Learning rate (default: 0.01)
	Momentum float32 // Momentum coefficient in [0, 1] (default: 0.9)
}

// NewMomentum creates a new classical momentum rule.
//
// A zero-value config resolves to the defaults. To run with a literal zero
// coefficient, use SetMomentum after construction.
func NewMomentum(config MomentumConfig) *Momentum {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Momentum == 0 {
		config.Momentum = 0.9
	}
	return &Momentum{lr: config.LR, momentum: config.Momentum}
}

// Step performs a single momentum update.
//
// The velocity stored back into the state always reflects the same step as
// the returned value; the record is never left mid-update.
func (m *Momentum) Step(w, dw *tensor.Tensor, state *State) (*tensor.Tensor, *State, error) {
	if err := checkShapes(w, dw); err != nil {
		return nil, nil, err
	}
	state, err := resolveState(state, w.Shape(), stateSpec{velocity: true})
	if err != nil {
		return nil, nil, err
	}

	wd := w.Data()
	gd := dw.Data()
	vd := state.Velocity.Data()
	for i := range wd {
		vd[i] = m.momentum*vd[i] - m.lr*gd[i]
		wd[i] += vd[i]
	}
	return w, state, nil
}

// LR returns the current learning rate.
func (m *Momentum) LR() float32 { return m.lr }

// SetLR updates the learning rate.
func (m *Momentum) SetLR(lr float32) { m.lr = lr }

// Momentum returns the momentum coefficient.
func (m *Momentum) Momentum() float32 { return m.momentum }

// SetMomentum updates the momentum coefficient.
func (m *Momentum) SetMomentum(mu float32) { m.momentum = mu }

// Name returns "momentum".
func (m *Momentum) Name() string { return "momentum" }
