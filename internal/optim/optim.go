// Package optim implements optimizers for training models built on the
// autodiff engine.
//
// An optimizer holds the flat parameter list a model exposes through
// Parameters() and consumes the gradients the backward pass accumulated
// on those nodes. Step mutates parameter values in place; it is the only
// code that ever writes to a node's value after creation.
//
// Training loop pattern:
//
//	optimizer.ZeroGrad()
//	loss := criterion.Forward(model.Forward(x), y)
//	loss.Backward(nil)
//	optimizer.Step()
//
// Forgetting ZeroGrad is not detected: gradients accumulate across steps
// by design, since callers may deliberately sum several backward passes
// (auxiliary losses) before one Step.
package optim

import (
	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
)

// Optimizer is the base interface for optimization algorithms.
type Optimizer interface {
	// Step applies the accumulated gradients to all parameters, in
	// place. By contract it runs only after a completed backward pass.
	Step()

	// ZeroGrad clears every parameter's gradient accumulator. Call it
	// before each forward/backward cycle unless accumulation across
	// steps is intended.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64
}

// Config holds the common optimizer hyperparameters.
type Config struct {
	LR          float64 // learning rate (default 0.01)
	WeightDecay float64 // L2 penalty coefficient (default 0)
}

// zeroGrad clears the gradient accumulator of every parameter.
func zeroGrad(params []*autodiff.Node) {
	for _, param := range params {
		param.ZeroGrad()
	}
}
