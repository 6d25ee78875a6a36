package ops

import (
	"fmt"
	"math"

	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

// Numerical-stability guards for BCE. The log clamp keeps the loss finite
// when a prediction saturates to exactly 0 or 1; the epsilon keeps the
// gradient's denominator away from zero at the same saturation points.
const (
	bceLogClamp = -100
	bceEpsilon  = 1e-12
)

// BCE computes the binary-cross-entropy loss
// -sum(target*log(pred) + (1-target)*log(1-pred)), summed over the batch
// dimension, with each log term clamped from below at -100.
//
// Predictions must lie in [0, 1]; anything else is a precondition failure
// and panics. Clamping out-of-range inputs silently would mask upstream
// model bugs.
//
// Backward:
//   - d/dpred = (pred - target) / max(pred*(1-pred), 1e-12) * outputGrad
//   - d/dtarget = (-log(pred) + log(1-pred)) * outputGrad
func BCE(pred, target *autodiff.Node) *autodiff.Node {
	if !pred.Value().Shape().Equal(target.Value().Shape()) {
		panic(fmt.Sprintf("ops: BCE: prediction shape %v does not match target shape %v",
			pred.Value().Shape(), target.Value().Shape()))
	}
	for _, v := range pred.Value().Data() {
		if v < 0 || v > 1 {
			panic(fmt.Sprintf("ops: BCE: prediction %v outside [0, 1]", v))
		}
	}

	x := pred.Value()
	y := target.Value()
	logX := x.Apply(func(v float64) float64 { return clampedLog(v) })
	logOneMinusX := x.Apply(func(v float64) float64 { return clampedLog(1 - v) })
	oneMinusY := y.Apply(func(v float64) float64 { return 1 - v })

	value := y.Mul(logX).Add(oneMinusY.Mul(logOneMinusX)).SumRows().Scale(-1)
	return autodiff.NewNode(value, &bceGradFn{pred: pred, target: target})
}

func clampedLog(v float64) float64 {
	return math.Max(math.Log(v), bceLogClamp)
}

type bceGradFn struct {
	pred, target *autodiff.Node
}

func (g *bceGradFn) Backward(outputGrad *tensor.Tensor) {
	x := g.pred.Value()
	y := g.target.Value()

	predGrad := tensor.New(x.Shape())
	xd, yd, gd := x.Data(), y.Data(), predGrad.Data()
	for i := range xd {
		gd[i] = (xd[i] - yd[i]) / math.Max(xd[i]*(1-xd[i]), bceEpsilon)
	}
	g.pred.Backward(predGrad.MulRow(outputGrad))

	targetGrad := x.Apply(func(v float64) float64 { return -math.Log(v) + math.Log(1-v) })
	g.target.Backward(targetGrad.MulRow(outputGrad))
}
