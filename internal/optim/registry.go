package optim

import "fmt"

// Config collects every hyperparameter recognized across the update rules.
//
// It exists for callers that select a rule by name (training scripts,
// experiment configs); each rule reads only the fields it documents and
// zero-valued fields resolve to that rule's defaults.
type Config struct {
	LR        float32 // Learning rate
	Momentum  float32 // Momentum coefficient (momentum, nesterov)
	DecayRate float32 // Squared-gradient decay rate (rmsprop)
	Beta1     float32 // First-moment decay rate (adam)
	Beta2     float32 // Second-moment decay rate (adam)
	Eps       float32 // Numerical-stability term (rmsprop, adam)
}

// New constructs an update rule by registry name.
//
// Recognized names: "sgd", "momentum", "nesterov", "rmsprop", "adam".
// Unknown names are an error.
func New(name string, config Config) (Rule, error) {
	switch name {
	case "sgd":
		return NewSGD(SGDConfig{LR: config.LR}), nil
	case "momentum":
		return NewMomentum(MomentumConfig{LR: config.LR, Momentum: config.Momentum}), nil
	case "nesterov":
		return NewNesterov(NesterovConfig{LR: config.LR, Momentum: config.Momentum}), nil
	case "rmsprop":
		return NewRMSProp(RMSPropConfig{LR: config.LR, DecayRate: config.DecayRate, Eps: config.Eps}), nil
	case "adam":
		return NewAdam(AdamConfig{LR: config.LR, Beta1: config.Beta1, Beta2: config.Beta2, Eps: config.Eps}), nil
	default:
		return nil, fmt.Errorf("unknown update rule %q", name)
	}
}
