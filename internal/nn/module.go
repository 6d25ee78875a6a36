// Package nn implements neural network modules on top of the autodiff
// engine.
//
// Building blocks:
//   - Module interface: Forward plus Parameters
//   - Linear: fully connected layer
//   - Activations: ReLU, Tanh, Sigmoid
//   - Sequential: ordered container
//   - Preprocess, WeightShare: dual-input models with independent or
//     shared branch parameters
//   - Losses: MSELoss, BCELoss, auxiliary-loss combination
//   - Checkpoint: JSON state snapshots of parameterized modules
package nn

import (
	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
)

// Module is the base interface for all neural network components.
//
// Forward builds a fresh slice of the computation graph on every call;
// Parameters returns every trainable node reachable from the module,
// each exactly once, in a deterministic order. Modules that share a
// sub-module across invocations must still list its parameters once.
type Module interface {
	// Forward computes the module output for the given input node.
	Forward(input *autodiff.Node) *autodiff.Node

	// Parameters returns the module's trainable nodes. Empty for
	// stateless modules such as activations.
	Parameters() []*autodiff.Node
}
