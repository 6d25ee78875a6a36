package ops

import (
	"math"

	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

// Sigmoid computes sigma(x) = 1 / (1 + exp(-x)) elementwise.
//
// Backward: d(sigma(x))/dx = sigma(x) * (1 - sigma(x)), computed from the
// forward output.
func Sigmoid(x *autodiff.Node) *autodiff.Node {
	value := x.Value().Apply(func(v float64) float64 {
		return 1 / (1 + math.Exp(-v))
	})
	return autodiff.NewNode(value, &sigmoidGradFn{x: x, output: value})
}

type sigmoidGradFn struct {
	x      *autodiff.Node
	output *tensor.Tensor
}

func (g *sigmoidGradFn) Backward(outputGrad *tensor.Tensor) {
	deriv := g.output.Apply(func(s float64) float64 { return s * (1 - s) })
	g.x.Backward(outputGrad.Mul(deriv))
}
