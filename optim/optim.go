// Package optim provides the public API for gradient-based parameter
// updates.
package optim

import (
	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
	"github.com/LaviSchlyter/Deep-learning-project/internal/optim"
)

// Optimizer updates parameters from their accumulated gradients.
type Optimizer = optim.Optimizer

// Config holds the hyperparameters shared by optimizers.
type Config = optim.Config

// SGD is plain full-batch gradient descent with optional weight decay.
type SGD = optim.SGD

// NewSGD creates an SGD optimizer over params.
func NewSGD(params []*autodiff.Node, config Config) *SGD {
	return optim.NewSGD(params, config)
}
