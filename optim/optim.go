// Copyright 2025 Stride ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/stride-ml/stride/internal/optim"
)

// Rule is the calling convention shared by all update rules.
type Rule = optim.Rule

// State is the per-parameter running state of an update rule.
type State = optim.State

// Config collects every hyperparameter recognized across the update rules;
// it is consumed by New when constructing a rule by name.
type Config = optim.Config

// New constructs an update rule by registry name:
// "sgd", "momentum", "nesterov", "rmsprop" or "adam".
func New(name string, config Config) (Rule, error) {
	return optim.New(name, config)
}

// SGD (Stochastic Gradient Descent)

// SGD is the vanilla stochastic gradient descent rule.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD rule.
//
// Example:
//
//	rule := optim.NewSGD(optim.SGDConfig{LR: 0.01})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Momentum (classical / heavy-ball)

// Momentum is the classical momentum rule.
type Momentum = optim.Momentum

// MomentumConfig contains configuration for Momentum.
type MomentumConfig = optim.MomentumConfig

// NewMomentum creates a new classical momentum rule.
//
// Example:
//
//	rule := optim.NewMomentum(optim.MomentumConfig{LR: 0.01, Momentum: 0.9})
func NewMomentum(config MomentumConfig) *Momentum {
	return optim.NewMomentum(config)
}

// Nesterov momentum

// Nesterov is the Nesterov momentum rule.
type Nesterov = optim.Nesterov

// NesterovConfig contains configuration for Nesterov.
type NesterovConfig = optim.NesterovConfig

// NewNesterov creates a new Nesterov momentum rule.
func NewNesterov(config NesterovConfig) *Nesterov {
	return optim.NewNesterov(config)
}

// RMSProp

// RMSProp is the RMSProp rule.
type RMSProp = optim.RMSProp

// RMSPropConfig contains configuration for RMSProp.
type RMSPropConfig = optim.RMSPropConfig

// NewRMSProp creates a new RMSProp rule.
//
// Example:
//
//	rule := optim.NewRMSProp(optim.RMSPropConfig{LR: 0.01, DecayRate: 0.99})
func NewRMSProp(config RMSPropConfig) *RMSProp {
	return optim.NewRMSProp(config)
}

// Adam (Adaptive Moment Estimation)

// Adam is the Adam rule.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam rule with bias correction.
//
// Example:
//
//	rule := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Beta1: 0.9,
//	    Beta2: 0.999,
//	})
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}

// State snapshots

// SaveState writes a checksummed state snapshot to path.
func SaveState(path string, s *State) error {
	return optim.SaveState(path, s)
}

// LoadState reads a state snapshot written by SaveState.
func LoadState(path string) (*State, error) {
	return optim.LoadState(path)
}
