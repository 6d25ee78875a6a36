package optim

import (
	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
)

// SGD implements stochastic gradient descent with optional weight decay.
//
// Update rule per parameter:
//
//	g = grad + weightDecay * value
//	value = value - lr * g
type SGD struct {
	params      []*autodiff.Node
	lr          float64
	weightDecay float64
}

// NewSGD creates an SGD optimizer over the given parameter list.
// A zero Config.LR defaults to 0.01.
func NewSGD(params []*autodiff.Node, config Config) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:      params,
		lr:          config.LR,
		weightDecay: config.WeightDecay,
	}
}

// Step applies one gradient-descent update to every parameter, mutating
// values in place. Parameters that received no gradient this step (not
// part of the graph) are skipped.
func (s *SGD) Step() {
	for _, param := range s.params {
		grad := param.Grad()
		if grad == nil {
			continue
		}
		value := param.Value().Data()
		gradData := grad.Data()
		for i := range value {
			value[i] -= s.lr * (gradData[i] + s.weightDecay*value[i])
		}
	}
}

// ZeroGrad clears the gradients of all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate, for scheduling.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
