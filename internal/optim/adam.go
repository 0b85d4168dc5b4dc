package optim

import (
	"math"

	"github.com/stride-ml/stride/internal/tensor"
)

// Adam implements the Adam (Adaptive Moment Estimation) update rule.
//
// Adam combines ideas from RMSProp and momentum:
//   - Maintains an exponential moving average of gradients (first moment)
//   - Maintains an exponential moving average of squared gradients (second moment)
//   - Applies bias correction to compensate for zero initialization
//
// Update rule, with t the step index before the call:
//
//	m' = beta1 * m + (1 - beta1) * dw
//	v' = beta2 * v + (1 - beta2) * dw²
//	m_hat = m' / (1 - beta1^t)
//	v_hat = v' / (1 - beta2^t)
//	next_w = w - lr * m_hat / (sqrt(v_hat) + eps)
//
// The counter starts at 1 and increments exactly once per call, after the
// bias correction has been computed. Correcting with the post-increment
// value instead systematically under-corrects the early steps.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	lr    float32
	beta1 float32
	beta2 float32
	eps   float32
}

// AdamConfig holds configuration for Adam.
type AdamConfig struct {
	LR    float32 // Learning rate (default: 0.001)
	Beta1 float32 // Decay rate for the first-moment average (default: 0.9)
	Beta2 float32 // Decay rate for the second-moment average (default: 0.999)
	Eps   float32 // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam rule with defaults filled in.
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Beta1 == 0 {
		config.Beta1 = 0.9
	}
	if config.Beta2 == 0 {
		config.Beta2 = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{lr: config.LR, beta1: config.Beta1, beta2: config.Beta2, eps: config.Eps}
}

// Step performs a single Adam update.
func (a *Adam) Step(w, dw *tensor.Tensor, state *State) (*tensor.Tensor, *State, error) {
	if err := checkShapes(w, dw); err != nil {
		return nil, nil, err
	}
	state, err := resolveState(state, w.Shape(), stateSpec{moments: true, counter: true})
	if err != nil {
		return nil, nil, err
	}

	// Bias correction uses the pre-increment step index.
	t := state.Step
	biasCorrection1 := float32(1.0 - math.Pow(float64(a.beta1), float64(t)))
	biasCorrection2 := float32(1.0 - math.Pow(float64(a.beta2), float64(t)))

	wd := w.Data()
	gd := dw.Data()
	md := state.M.Data()
	vd := state.V.Data()
	for i := range wd {
		g := gd[i]

		md[i] = a.beta1*md[i] + (1-a.beta1)*g
		vd[i] = a.beta2*vd[i] + (1-a.beta2)*g*g

		mHat := md[i] / biasCorrection1
		vHat := vd[i] / biasCorrection2

		wd[i] -= a.lr * mHat / (float32(math.Sqrt(float64(vHat))) + a.eps)
	}
	state.Step = t + 1
	return w, state, nil
}

// LR returns the current learning rate.
func (a *Adam) LR() float32 { return a.lr }

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float32) { a.lr = lr }

// Name returns "adam".
func (a *Adam) Name() string { return "adam" }
