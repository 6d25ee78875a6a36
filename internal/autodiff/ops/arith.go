package ops

import (
	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

// Add computes a + b elementwise.
//
// Backward: the gradient flows unchanged to both inputs.
func Add(a, b *autodiff.Node) *autodiff.Node {
	value := a.Value().Add(b.Value())
	return autodiff.NewNode(value, &addGradFn{a: a, b: b})
}

type addGradFn struct {
	a, b *autodiff.Node
}

func (g *addGradFn) Backward(outputGrad *tensor.Tensor) {
	g.a.Backward(outputGrad)
	g.b.Backward(outputGrad)
}

// Scale computes c * x for a constant c.
func Scale(x *autodiff.Node, c float64) *autodiff.Node {
	value := x.Value().Scale(c)
	return autodiff.NewNode(value, &scaleGradFn{x: x, c: c})
}

type scaleGradFn struct {
	x *autodiff.Node
	c float64
}

func (g *scaleGradFn) Backward(outputGrad *tensor.Tensor) {
	g.x.Backward(outputGrad.Scale(g.c))
}

// Sum reduces x to a single-element node holding the sum of all its
// elements.
//
// Backward: the scalar gradient is broadcast to every element of x.
func Sum(x *autodiff.Node) *autodiff.Node {
	value := tensor.FromSlice([]float64{x.Value().Sum()}, tensor.Shape{1, 1})
	return autodiff.NewNode(value, &sumGradFn{x: x})
}

type sumGradFn struct {
	x *autodiff.Node
}

func (g *sumGradFn) Backward(outputGrad *tensor.Tensor) {
	g.x.Backward(tensor.Full(g.x.Value().Shape(), outputGrad.Item()))
}

// AddScaled computes a + c*b, the combination used to fold a weighted
// auxiliary loss into a primary loss.
func AddScaled(a, b *autodiff.Node, c float64) *autodiff.Node {
	value := a.Value().AddScaled(b.Value(), c)
	return autodiff.NewNode(value, &addScaledGradFn{a: a, b: b, c: c})
}

type addScaledGradFn struct {
	a, b *autodiff.Node
	c    float64
}

func (g *addScaledGradFn) Backward(outputGrad *tensor.Tensor) {
	g.a.Backward(outputGrad)
	g.b.Backward(outputGrad.Scale(g.c))
}
