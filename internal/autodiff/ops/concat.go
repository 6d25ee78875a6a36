package ops

import (
	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

// Concat joins a and b along the feature dimension.
//
// Backward: the output gradient is split back into the two column blocks.
func Concat(a, b *autodiff.Node) *autodiff.Node {
	value := a.Value().ConcatCols(b.Value())
	return autodiff.NewNode(value, &concatGradFn{a: a, b: b})
}

type concatGradFn struct {
	a, b *autodiff.Node
}

func (g *concatGradFn) Backward(outputGrad *tensor.Tensor) {
	split := g.a.Value().Cols()
	g.a.Backward(outputGrad.SliceCols(0, split))
	g.b.Backward(outputGrad.SliceCols(split, outputGrad.Cols()))
}

// SliceCols selects columns [from, to) of x.
//
// Backward: the gradient is embedded back at its column offset, zero
// elsewhere, so two disjoint slices of the same input accumulate
// independent contributions on it.
func SliceCols(x *autodiff.Node, from, to int) *autodiff.Node {
	value := x.Value().SliceCols(from, to)
	return autodiff.NewNode(value, &sliceColsGradFn{x: x, from: from})
}

type sliceColsGradFn struct {
	x    *autodiff.Node
	from int
}

func (g *sliceColsGradFn) Backward(outputGrad *tensor.Tensor) {
	g.x.Backward(outputGrad.EmbedCols(g.x.Value().Cols(), g.from))
}
