package ops

import (
	"fmt"

	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

// MSE computes the mean-squared-error loss 0.5 * sum((pred - target)^2),
// summed over the batch dimension. The sum is deliberately not averaged;
// callers account for batch size themselves.
//
// Backward:
//   - d/dpred = (pred - target) * outputGrad
//   - d/dtarget = -(pred - target) * outputGrad
//
// The target gradient is defined so targets may themselves be model
// outputs, even though plain training targets are leaves.
func MSE(pred, target *autodiff.Node) *autodiff.Node {
	if !pred.Value().Shape().Equal(target.Value().Shape()) {
		panic(fmt.Sprintf("ops: MSE: prediction shape %v does not match target shape %v",
			pred.Value().Shape(), target.Value().Shape()))
	}
	diff := pred.Value().Sub(target.Value())
	value := diff.Mul(diff).Scale(0.5).SumRows()
	return autodiff.NewNode(value, &mseGradFn{pred: pred, target: target})
}

type mseGradFn struct {
	pred, target *autodiff.Node
}

func (g *mseGradFn) Backward(outputGrad *tensor.Tensor) {
	diff := g.pred.Value().Sub(g.target.Value())
	predGrad := diff.MulRow(outputGrad)
	g.pred.Backward(predGrad)
	g.target.Backward(predGrad.Scale(-1))
}
