// Package ops implements the differentiable operations of the autodiff
// engine, one forward function plus one gradient function per operation.
//
// Every forward function is pure: it computes the output tensor from its
// input nodes' values, wraps it in a new Node, and attaches a grad
// function that captures exactly the inputs the derivative rule needs.
// Inputs are never mutated, so the same node can safely feed several
// operations; each use contributes additively to the node's gradient
// during the backward pass.
//
// Supported operations:
//   - Affine: y = x@W + b (the linear layer)
//   - ReLU, Tanh, Sigmoid: pointwise activations
//   - Concat, SliceCols: feature-dimension splitting and joining
//   - Add, Scale, AddScaled: loss combination arithmetic
//   - MSE, BCE: loss functions with numerically stabilized gradients
package ops
