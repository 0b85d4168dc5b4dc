package optim

import (
	"math"

	"github.com/stride-ml/stride/internal/tensor"
)

// RMSProp implements the RMSProp update rule, which scales each element's
// step by a moving average of its squared gradients.
//
// Update rule (elementwise):
//
//	cache' = decay_rate * cache + (1 - decay_rate) * dw²
//	next_w = w - lr * dw / (sqrt(cache') + eps)
//
// eps exists solely to keep the division finite when cache' is exactly
// zero. It is added to the denominator, never applied as a max/clamp floor;
// flooring changes the numerics for small caches.
type RMSProp struct {
	lr        float32
	decayRate float32
	eps       float32
}

// RMSPropConfig holds configuration for RMSProp.
type RMSPropConfig struct {
	LR        float32 // Learning rate (default: 0.01)
	DecayRate float32 // Decay rate for the squared-gradient cache (default: 0.99)
	Eps       float32 // Term for numerical stability (default: 1e-8)
}

// NewRMSProp creates a new RMSProp rule with defaults filled in.
func NewRMSProp(config RMSPropConfig) *RMSProp {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.DecayRate == 0 {
		config.DecayRate = 0.99
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &RMSProp{lr: config.LR, decayRate: config.DecayRate, eps: config.Eps}
}

// Step performs a single RMSProp update.
func (r *RMSProp) Step(w, dw *tensor.Tensor, state *State) (*tensor.Tensor, *State, error) {
	if err := checkShapes(w, dw); err != nil {
		return nil, nil, err
	}
	state, err := resolveState(state, w.Shape(), stateSpec{cache: true})
	if err != nil {
		return nil, nil, err
	}

	wd := w.Data()
	gd := dw.Data()
	cd := state.Cache.Data()
	beta := r.decayRate
	for i := range wd {
		g := gd[i]
		cd[i] = beta*cd[i] + (1-beta)*g*g
		wd[i] -= r.lr * g / (float32(math.Sqrt(float64(cd[i]))) + r.eps)
	}
	return w, state, nil
}

// LR returns the current learning rate.
func (r *RMSProp) LR() float32 { return r.lr }

// SetLR updates the learning rate.
func (r *RMSProp) SetLR(lr float32) { r.lr = lr }

// Name returns "rmsprop".
func (r *RMSProp) Name() string { return "rmsprop" }
