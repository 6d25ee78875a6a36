package ops

import (
	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

// ReLU computes max(0, x) elementwise.
//
// Backward: the gradient passes through where x > 0 and is blocked
// elsewhere.
func ReLU(x *autodiff.Node) *autodiff.Node {
	value := x.Value().Apply(func(v float64) float64 {
		if v > 0 {
			return v
		}
		return 0
	})
	return autodiff.NewNode(value, &reluGradFn{x: x})
}

type reluGradFn struct {
	x *autodiff.Node
}

func (g *reluGradFn) Backward(outputGrad *tensor.Tensor) {
	mask := g.x.Value().Apply(func(v float64) float64 {
		if v > 0 {
			return 1
		}
		return 0
	})
	g.x.Backward(outputGrad.Mul(mask))
}
