package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
	"github.com/LaviSchlyter/Deep-learning-project/internal/nn"
	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

func TestMSELoss(t *testing.T) {
	loss := nn.NewMSELoss()
	assert.Empty(t, loss.Parameters())

	pred := autodiff.NewLeaf(tensor.FromSlice([]float64{3, 1}, tensor.Shape{2, 1}))
	target := autodiff.NewLeaf(tensor.FromSlice([]float64{1, 1}, tensor.Shape{2, 1}))

	// Summed over the batch, not averaged: 0.5*(3-1)^2 = 2.
	out := loss.Forward(pred, target)
	assert.InDelta(t, 2.0, out.Item(), 1e-12)

	out.Backward(nil)
	assert.Equal(t, []float64{2, 0}, pred.Grad().Data())
	assert.Equal(t, []float64{-2, 0}, target.Grad().Data())
}

func TestBCELoss(t *testing.T) {
	loss := nn.NewBCELoss()
	assert.Empty(t, loss.Parameters())

	pred := autodiff.NewLeaf(tensor.FromSlice([]float64{0.9}, tensor.Shape{1, 1}))
	target := autodiff.NewLeaf(tensor.FromSlice([]float64{1}, tensor.Shape{1, 1}))

	out := loss.Forward(pred, target)
	assert.InDelta(t, -math.Log(0.9), out.Item(), 1e-12)
}

func TestBCELoss_DomainPanics(t *testing.T) {
	loss := nn.NewBCELoss()
	target := autodiff.NewLeaf(tensor.FromSlice([]float64{0}, tensor.Shape{1, 1}))
	pred := autodiff.NewLeaf(tensor.FromSlice([]float64{2}, tensor.Shape{1, 1}))

	assert.Panics(t, func() { loss.Forward(pred, target) })
}

func TestBCELoss_SaturatedPredictionStaysFinite(t *testing.T) {
	loss := nn.NewBCELoss()
	pred := autodiff.NewLeaf(tensor.FromSlice([]float64{1e-13}, tensor.Shape{1, 1}))
	target := autodiff.NewLeaf(tensor.FromSlice([]float64{1}, tensor.Shape{1, 1}))

	out := loss.Forward(pred, target)
	require.False(t, math.IsInf(out.Item(), 0))

	out.Backward(nil)
	grad := pred.Grad().Item()
	require.False(t, math.IsInf(grad, 0))
	require.False(t, math.IsNaN(grad))
}

func TestWithAuxiliary(t *testing.T) {
	primary := autodiff.NewLeaf(tensor.FromSlice([]float64{2}, tensor.Shape{1, 1}))
	auxA := autodiff.NewLeaf(tensor.FromSlice([]float64{1}, tensor.Shape{1, 1}))
	auxB := autodiff.NewLeaf(tensor.FromSlice([]float64{3}, tensor.Shape{1, 1}))

	total := nn.WithAuxiliary(primary, 0.5, auxA, auxB)
	assert.InDelta(t, 2+0.5*(1+3), total.Item(), 1e-12)

	total.Backward(nil)
	assert.Equal(t, []float64{1}, primary.Grad().Data())
	assert.Equal(t, []float64{0.5}, auxA.Grad().Data())
	assert.Equal(t, []float64{0.5}, auxB.Grad().Data())
}

func TestWithAuxiliary_NoAuxTerms(t *testing.T) {
	primary := autodiff.NewLeaf(tensor.FromSlice([]float64{2}, tensor.Shape{1, 1}))
	assert.Same(t, primary, nn.WithAuxiliary(primary, 0.5))
}

// Combining primary and auxiliary losses through one combined node must
// put the same gradient on the shared parameters as two separate
// backward calls relying on accumulation.
func TestWithAuxiliary_MatchesTwoBackwardPasses(t *testing.T) {
	build := func() (*nn.WeightShare, *autodiff.Node) {
		branch := nn.NewLinear(2, 3)
		for i, v := range []float64{0.1, -0.2, 0.3, 0.4, -0.5, 0.6} {
			branch.Weight().Value().Data()[i] = v
		}
		head := nn.NewLinear(6, 1)
		for i := range head.Weight().Value().Data() {
			head.Weight().Value().Data()[i] = 0.25
		}
		model := nn.NewWeightShare(branch, head)
		x := autodiff.NewLeaf(tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{1, 4}))
		return model, x
	}
	targets := func() (y, auxY *autodiff.Node) {
		return autodiff.NewLeaf(tensor.FromSlice([]float64{1}, tensor.Shape{1, 1})),
			autodiff.NewLeaf(tensor.FromSlice([]float64{0.5, 0.5, 0.5}, tensor.Shape{1, 3}))
	}
	mse := nn.NewMSELoss()
	const auxWeight = 0.3

	// Combined node, single backward.
	combinedModel, x1 := build()
	y1, auxY1 := targets()
	out, outA, outB := combinedModel.ForwardBranches(x1)
	total := nn.WithAuxiliary(mse.Forward(out, y1), auxWeight,
		mse.Forward(outA, auxY1), mse.Forward(outB, auxY1))
	total.Backward(nil)

	// Separate backward calls, gradients accumulating between them.
	separateModel, x2 := build()
	y2, auxY2 := targets()
	out2, outA2, outB2 := separateModel.ForwardBranches(x2)
	mse.Forward(out2, y2).Backward(nil)
	auxSeed := tensor.Full(tensor.Shape{1, 3}, auxWeight)
	mse.Forward(outA2, auxY2).Backward(auxSeed)
	mse.Forward(outB2, auxY2).Backward(auxSeed)

	for i, want := range combinedModel.Parameters() {
		got := separateModel.Parameters()[i]
		require.NotNil(t, got.Grad())
		for j, w := range want.Grad().Data() {
			assert.InDelta(t, w, got.Grad().Data()[j], 1e-10)
		}
	}
}
