package ops

import (
	"fmt"

	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

// Affine computes the affine transformation y = x@W + b.
//
// Shapes: x is [batch, in], w is [in, out], b is [1, out] and is
// broadcast over the batch dimension.
//
// Backward:
//   - d/dx = outputGrad @ W^T
//   - d/dW = x^T @ outputGrad
//   - d/db = column sums of outputGrad
func Affine(x, w, b *autodiff.Node) *autodiff.Node {
	if x.Value().Cols() != w.Value().Rows() {
		panic(fmt.Sprintf("ops: Affine: input features %v do not match weight %v",
			x.Value().Shape(), w.Value().Shape()))
	}
	value := x.Value().MatMul(w.Value()).AddRow(b.Value())
	return autodiff.NewNode(value, &affineGradFn{x: x, w: w, b: b})
}

type affineGradFn struct {
	x, w, b *autodiff.Node
}

func (g *affineGradFn) Backward(outputGrad *tensor.Tensor) {
	g.x.Backward(outputGrad.MatMul(g.w.Value().Transpose()))
	g.w.Backward(g.x.Value().Transpose().MatMul(outputGrad))
	g.b.Backward(outputGrad.SumRows())
}
