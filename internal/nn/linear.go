package nn

import (
	"fmt"

	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff/ops"
	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

// Linear implements a fully connected (dense) layer: y = x @ W + b.
//
// The weight has shape [in_features, out_features] and the bias
// [1, out_features], broadcast over the batch. Weights are initialized
// with Xavier, biases with zeros. Both are leaf nodes that persist across
// training steps; everything else the layer produces is transient graph.
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *autodiff.Node
	bias        *autodiff.Node
}

// NewLinear creates a Linear layer with Xavier-initialized weights and
// zero biases.
func NewLinear(inFeatures, outFeatures int) *Linear {
	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      autodiff.NewLeaf(Xavier(inFeatures, outFeatures, tensor.Shape{inFeatures, outFeatures})),
		bias:        autodiff.NewLeaf(tensor.Zeros(tensor.Shape{1, outFeatures})),
	}
}

// Forward computes y = x @ W + b for input [batch, in_features].
func (l *Linear) Forward(input *autodiff.Node) *autodiff.Node {
	if input.Value().Cols() != l.inFeatures {
		panic(fmt.Sprintf("nn: Linear.Forward: expected %d input features, got shape %v",
			l.inFeatures, input.Value().Shape()))
	}
	return ops.Affine(input, l.weight, l.bias)
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*autodiff.Node {
	return []*autodiff.Node{l.weight, l.bias}
}

// Weight returns the weight node.
func (l *Linear) Weight() *autodiff.Node {
	return l.weight
}

// Bias returns the bias node.
func (l *Linear) Bias() *autodiff.Node {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}

// StateDict returns the layer parameters keyed by name.
func (l *Linear) StateDict() map[string]*tensor.Tensor {
	return map[string]*tensor.Tensor{
		"weight": l.weight.Value(),
		"bias":   l.bias.Value(),
	}
}

// LoadStateDict copies parameter values from a state dictionary.
func (l *Linear) LoadStateDict(state map[string]*tensor.Tensor) error {
	for name, param := range l.StateDict() {
		loaded, ok := state[name]
		if !ok {
			return fmt.Errorf("nn: Linear: missing %q in state dict", name)
		}
		if !loaded.Shape().Equal(param.Shape()) {
			return fmt.Errorf("nn: Linear: %s shape mismatch: expected %v, got %v",
				name, param.Shape(), loaded.Shape())
		}
		copy(param.Data(), loaded.Data())
	}
	return nil
}
