// Package autodiff provides the public API for reverse-mode automatic
// differentiation.
//
// A computation is a graph of Nodes. Leaf nodes wrap raw tensors;
// interior nodes are produced by the operations in autodiff/ops and
// carry a GradFunc that propagates gradients to their inputs. Calling
// Backward on the final node accumulates gradients into every node
// that contributed to it.
package autodiff

import (
	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

// Node is one value in a differentiable computation graph.
type Node = autodiff.Node

// GradFunc propagates an output gradient to a node's inputs.
type GradFunc = autodiff.GradFunc

// NewLeaf creates a graph input with no gradient function.
func NewLeaf(value *tensor.Tensor) *Node {
	return autodiff.NewLeaf(value)
}

// NewNode creates an interior node produced by an operation.
func NewNode(value *tensor.Tensor, gradFn GradFunc) *Node {
	return autodiff.NewNode(value, gradFn)
}
