package optim

import "github.com/stride-ml/stride/internal/tensor"

// SGD implements vanilla stochastic gradient descent.
//
// Update rule:
//
//	next_w = w - lr * dw
//
// SGD carries no running state; the State threaded through Step is passed
// along untouched so callers can treat all rules uniformly.
//
// Example:
//
//	rule := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//	w, state, err := rule.Step(w, grad, state)
type SGD struct {
	lr float32
}

// SGDConfig holds configuration for SGD.
type SGDConfig struct {
	LR float32 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD rule.
//
// A zero-value config resolves to the default learning rate. To run with a
// literal zero rate, use SetLR after construction.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{lr: config.LR}
}

// Step performs a single SGD update.
func (s *SGD) Step(w, dw *tensor.Tensor, state *State) (*tensor.Tensor, *State, error) {
	if err := checkShapes(w, dw); err != nil {
		return nil, nil, err
	}
	state, err := resolveState(state, w.Shape(), stateSpec{})
	if err != nil {
		return nil, nil, err
	}

	wd := w.Data()
	gd := dw.Data()
	for i := range wd {
		wd[i] -= s.lr * gd[i]
	}
	return w, state, nil
}

// LR returns the current learning rate.
func (s *SGD) LR() float32 { return s.lr }

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float32) { s.lr = lr }

// Name returns "sgd".
func (s *SGD) Name() string { return "sgd" }
