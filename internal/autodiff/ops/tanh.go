package ops

import (
	"math"

	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

// Tanh computes the hyperbolic tangent elementwise.
//
// Backward: d(tanh(x))/dx = 1 - tanh(x)^2, computed from the forward
// output.
func Tanh(x *autodiff.Node) *autodiff.Node {
	value := x.Value().Apply(math.Tanh)
	return autodiff.NewNode(value, &tanhGradFn{x: x, output: value})
}

type tanhGradFn struct {
	x      *autodiff.Node
	output *tensor.Tensor
}

func (g *tanhGradFn) Backward(outputGrad *tensor.Tensor) {
	deriv := g.output.Apply(func(t float64) float64 { return 1 - t*t })
	g.x.Backward(outputGrad.Mul(deriv))
}
