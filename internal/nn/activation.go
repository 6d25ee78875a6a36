package nn

import (
	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff/ops"
)

// ReLU is a rectified linear unit activation module: f(x) = max(0, x).
type ReLU struct{}

// NewReLU creates a ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU elementwise.
func (r *ReLU) Forward(input *autodiff.Node) *autodiff.Node {
	return ops.ReLU(input)
}

// Parameters returns nil (ReLU has no trainable parameters).
func (r *ReLU) Parameters() []*autodiff.Node {
	return nil
}

// Tanh is a hyperbolic tangent activation module, squashing values to
// (-1, 1).
type Tanh struct{}

// NewTanh creates a Tanh activation module.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Forward applies Tanh elementwise.
func (t *Tanh) Forward(input *autodiff.Node) *autodiff.Node {
	return ops.Tanh(input)
}

// Parameters returns nil (Tanh has no trainable parameters).
func (t *Tanh) Parameters() []*autodiff.Node {
	return nil
}

// Sigmoid is a sigmoid activation module, squashing values to (0, 1).
// It is the usual final activation before a BCE loss.
type Sigmoid struct{}

// NewSigmoid creates a Sigmoid activation module.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies Sigmoid elementwise.
func (s *Sigmoid) Forward(input *autodiff.Node) *autodiff.Node {
	return ops.Sigmoid(input)
}

// Parameters returns nil (Sigmoid has no trainable parameters).
func (s *Sigmoid) Parameters() []*autodiff.Node {
	return nil
}
