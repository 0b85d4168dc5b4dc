package optim

import "github.com/stride-ml/stride/internal/tensor"

// Nesterov implements stochastic gradient descent with Nesterov momentum.
//
// Update rule, with v_prev the velocity from the previous step:
//
//	v' = momentum * v_prev - lr * dw
//	next_w = w - momentum * v_prev + (1 + momentum) * v'
//
// This formulation evaluates the gradient at w rather than at the
// look-ahead point but algebraically reproduces the look-ahead correction,
// so a second gradient evaluation is never needed. It is equivalent to
//
//	next_w = w - lr * dw + momentum * v'
//
// Setting momentum = 0 reduces exactly to SGD.
type Nesterov struct {
	lr       float32
	momentum float32
}

// NesterovConfig holds configuration for Nesterov.
type NesterovConfig struct {
	LR       float32 // Learning rate (default: 0.01)
	Momentum float32 // Momentum coefficient in [0, 1] (default: 0.9)
}

// NewNesterov creates a new Nesterov momentum rule.
//
// A zero-value config resolves to the defaults. To run with a literal zero
// coefficient, use SetMomentum after construction.
func NewNesterov(config NesterovConfig) *Nesterov {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Momentum == 0 {
		config.Momentum = 0.9
	}
	return &Nesterov{lr: config.LR, momentum: config.Momentum}
}

// Step performs a single Nesterov momentum update.
func (n *Nesterov) Step(w, dw *tensor.Tensor, state *State) (*tensor.Tensor, *State, error) {
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
	mu := n.momentum
	for i := range wd {
		// The previous velocity must be snapshotted before the buffer is
		// overwritten; the correction term reads the pre-update value.
		prev := vd[i]
		vd[i] = mu*prev - n.lr*gd[i]
		wd[i] += -mu*prev + (1+mu)*vd[i]
	}
	return w, state, nil
}

// LR returns the current learning rate.
func (n *Nesterov) LR() float32 { return n.lr }

// SetLR updates the learning rate.
func (n *Nesterov) SetLR(lr float32) { n.lr = lr }

// Momentum returns the momentum coefficient.
func (n *Nesterov) Momentum() float32 { return n.momentum }

// SetMomentum updates the momentum coefficient.
func (n *Nesterov) SetMomentum(mu float32) { n.momentum = mu }

// Name returns "nesterov".
func (n *Nesterov) Name() string { return "nesterov" }
