package ops_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff/ops"
	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

const gradTolerance = 1e-4

// numericGrad estimates the gradient of f at x with central finite
// differences, perturbing one element at a time.
func numericGrad(f func() float64, x *tensor.Tensor) *tensor.Tensor {
	const eps = 1e-6
	grad := tensor.ZerosLike(x)
	for i := range x.Data() {
		orig := x.Data()[i]
		x.Data()[i] = orig + eps
		plus := f()
		x.Data()[i] = orig - eps
		minus := f()
		x.Data()[i] = orig
		grad.Data()[i] = (plus - minus) / (2 * eps)
	}
	return grad
}

// checkGrad compares the analytic gradient of sum(forward()) with respect
// to each input against finite differences.
func checkGrad(t *testing.T, forward func() *autodiff.Node, inputs ...*autodiff.Node) {
	t.Helper()

	out := forward()
	out.Backward(nil) // seed every output element with 1

	for i, input := range inputs {
		require.NotNil(t, input.Grad(), "input %d received no gradient", i)
		expected := numericGrad(func() float64 { return forward().Value().Sum() }, input.Value())
		for j, want := range expected.Data() {
			assert.InDelta(t, want, input.Grad().Data()[j],
				gradTolerance, "input %d element %d", i, j)
		}
	}
}

func TestAffineGradient(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	x := autodiff.NewLeaf(tensor.Uniform(tensor.Shape{4, 3}, -1, 1, rng))
	w := autodiff.NewLeaf(tensor.Uniform(tensor.Shape{3, 2}, -1, 1, rng))
	b := autodiff.NewLeaf(tensor.Uniform(tensor.Shape{1, 2}, -1, 1, rng))

	checkGrad(t, func() *autodiff.Node { return ops.Affine(x, w, b) }, x, w, b)
}

func TestAffine_ShapeMismatchPanics(t *testing.T) {
	x := autodiff.NewLeaf(tensor.Zeros(tensor.Shape{4, 3}))
	w := autodiff.NewLeaf(tensor.Zeros(tensor.Shape{2, 2}))
	b := autodiff.NewLeaf(tensor.Zeros(tensor.Shape{1, 2}))

	assert.Panics(t, func() { ops.Affine(x, w, b) })
}

func TestReLUGradient(t *testing.T) {
	// Keep values away from the kink at 0 where finite differences lie.
	x := autodiff.NewLeaf(tensor.FromSlice([]float64{-1.5, -0.3, 0.4, 2.0, -2.2, 0.9}, tensor.Shape{2, 3}))
	checkGrad(t, func() *autodiff.Node { return ops.ReLU(x) }, x)
}

func TestReLUForward(t *testing.T) {
	x := autodiff.NewLeaf(tensor.FromSlice([]float64{-1, 0, 2}, tensor.Shape{1, 3}))
	assert.Equal(t, []float64{0, 0, 2}, ops.ReLU(x).Value().Data())
}

func TestTanhGradient(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	x := autodiff.NewLeaf(tensor.Uniform(tensor.Shape{3, 3}, -2, 2, rng))
	checkGrad(t, func() *autodiff.Node { return ops.Tanh(x) }, x)
}

func TestSigmoidGradient(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	x := autodiff.NewLeaf(tensor.Uniform(tensor.Shape{3, 3}, -2, 2, rng))
	checkGrad(t, func() *autodiff.Node { return ops.Sigmoid(x) }, x)
}

func TestSigmoidForward(t *testing.T) {
	x := autodiff.NewLeaf(tensor.FromSlice([]float64{0}, tensor.Shape{1, 1}))
	assert.InDelta(t, 0.5, ops.Sigmoid(x).Item(), 1e-12)
}

func TestConcatGradient(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	a := autodiff.NewLeaf(tensor.Uniform(tensor.Shape{2, 3}, -1, 1, rng))
	b := autodiff.NewLeaf(tensor.Uniform(tensor.Shape{2, 2}, -1, 1, rng))

	out := ops.Concat(a, b)
	require.True(t, out.Value().Shape().Equal(tensor.Shape{2, 5}))

	seed := tensor.FromSlice([]float64{
		1, 2, 3, 4, 5,
		6, 7, 8, 9, 10,
	}, tensor.Shape{2, 5})
	out.Backward(seed)

	assert.Equal(t, []float64{1, 2, 3, 6, 7, 8}, a.Grad().Data())
	assert.Equal(t, []float64{4, 5, 9, 10}, b.Grad().Data())
}

func TestSliceColsGradient(t *testing.T) {
	x := autodiff.NewLeaf(tensor.FromSlice([]float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
	}, tensor.Shape{2, 4}))

	out := ops.SliceCols(x, 1, 3)
	assert.Equal(t, []float64{2, 3, 6, 7}, out.Value().Data())

	out.Backward(tensor.Ones(tensor.Shape{2, 2}))
	assert.Equal(t, []float64{0, 1, 1, 0, 0, 1, 1, 0}, x.Grad().Data())
}

// Two disjoint slices of the same input accumulate on it as if it had
// been used once per column.
func TestSliceCols_TwoBranchesCoverInput(t *testing.T) {
	x := autodiff.NewLeaf(tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{1, 4}))

	left := ops.SliceCols(x, 0, 2)
	right := ops.SliceCols(x, 2, 4)
	out := ops.Add(left, right)
	out.Backward(nil)

	assert.Equal(t, []float64{1, 1, 1, 1}, x.Grad().Data())
}

func TestArithGradients(t *testing.T) {
	a := autodiff.NewLeaf(tensor.FromSlice([]float64{1, 2}, tensor.Shape{1, 2}))
	b := autodiff.NewLeaf(tensor.FromSlice([]float64{3, 4}, tensor.Shape{1, 2}))

	sum := ops.Add(a, b)
	assert.Equal(t, []float64{4, 6}, sum.Value().Data())
	sum.Backward(tensor.FromSlice([]float64{5, 7}, tensor.Shape{1, 2}))
	assert.Equal(t, []float64{5, 7}, a.Grad().Data())
	assert.Equal(t, []float64{5, 7}, b.Grad().Data())

	x := autodiff.NewLeaf(tensor.FromSlice([]float64{2}, tensor.Shape{1, 1}))
	scaled := ops.Scale(x, -3)
	assert.Equal(t, []float64{-6}, scaled.Value().Data())
	scaled.Backward(nil)
	assert.Equal(t, []float64{-3}, x.Grad().Data())
}

func TestSumGradient(t *testing.T) {
	x := autodiff.NewLeaf(tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}))

	total := ops.Sum(x)
	assert.Equal(t, 10.0, total.Item())

	total.Backward(tensor.FromSlice([]float64{3}, tensor.Shape{1, 1}))
	assert.Equal(t, []float64{3, 3, 3, 3}, x.Grad().Data())
}

func TestAddScaledGradient(t *testing.T) {
	primary := autodiff.NewLeaf(tensor.FromSlice([]float64{1}, tensor.Shape{1, 1}))
	aux := autodiff.NewLeaf(tensor.FromSlice([]float64{10}, tensor.Shape{1, 1}))

	total := ops.AddScaled(primary, aux, 0.25)
	assert.Equal(t, 3.5, total.Item())

	total.Backward(nil)
	assert.Equal(t, []float64{1}, primary.Grad().Data())
	assert.Equal(t, []float64{0.25}, aux.Grad().Data())
}

func TestMSEForward(t *testing.T) {
	pred := autodiff.NewLeaf(tensor.FromSlice([]float64{2, 0}, tensor.Shape{2, 1}))
	target := autodiff.NewLeaf(tensor.FromSlice([]float64{1, 2}, tensor.Shape{2, 1}))

	loss := ops.MSE(pred, target)
	// 0.5 * ((2-1)^2 + (0-2)^2) = 2.5, summed not averaged.
	assert.InDelta(t, 2.5, loss.Item(), 1e-12)
}

func TestMSEGradient(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	pred := autodiff.NewLeaf(tensor.Uniform(tensor.Shape{5, 2}, -1, 1, rng))
	target := autodiff.NewLeaf(tensor.Uniform(tensor.Shape{5, 2}, -1, 1, rng))

	checkGrad(t, func() *autodiff.Node { return ops.MSE(pred, target) }, pred, target)
}

func TestMSE_ShapeMismatchPanics(t *testing.T) {
	pred := autodiff.NewLeaf(tensor.Zeros(tensor.Shape{2, 1}))
	target := autodiff.NewLeaf(tensor.Zeros(tensor.Shape{1, 2}))
	assert.Panics(t, func() { ops.MSE(pred, target) })
}

func TestBCEGradient(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	// Stay inside (0, 1) with margin so the finite-difference probe does
	// not cross the domain boundary.
	pred := autodiff.NewLeaf(tensor.Uniform(tensor.Shape{5, 1}, 0.05, 0.95, rng))
	target := autodiff.NewLeaf(tensor.Uniform(tensor.Shape{5, 1}, 0.05, 0.95, rng))

	checkGrad(t, func() *autodiff.Node { return ops.BCE(pred, target) }, pred, target)
}

func TestBCE_OutOfRangePanics(t *testing.T) {
	target := autodiff.NewLeaf(tensor.FromSlice([]float64{1}, tensor.Shape{1, 1}))

	over := autodiff.NewLeaf(tensor.FromSlice([]float64{1.1}, tensor.Shape{1, 1}))
	assert.Panics(t, func() { ops.BCE(over, target) })

	under := autodiff.NewLeaf(tensor.FromSlice([]float64{-0.1}, tensor.Shape{1, 1}))
	assert.Panics(t, func() { ops.BCE(under, target) })
}

// Saturated predictions must produce a finite loss (log clamp at -100)
// and a finite, bounded gradient (epsilon guard at 1e-12).
func TestBCE_SaturationGuards(t *testing.T) {
	for _, predValue := range []float64{0, 1e-13} {
		pred := autodiff.NewLeaf(tensor.FromSlice([]float64{predValue}, tensor.Shape{1, 1}))
		target := autodiff.NewLeaf(tensor.FromSlice([]float64{1}, tensor.Shape{1, 1}))

		loss := ops.BCE(pred, target)
		require.False(t, math.IsInf(loss.Item(), 0), "loss for pred=%v", predValue)
		require.False(t, math.IsNaN(loss.Item()), "loss for pred=%v", predValue)
		assert.LessOrEqual(t, loss.Item(), 100.0)

		loss.Backward(nil)
		grad := pred.Grad().Item()
		require.False(t, math.IsInf(grad, 0), "gradient for pred=%v", predValue)
		require.False(t, math.IsNaN(grad), "gradient for pred=%v", predValue)
		assert.LessOrEqual(t, math.Abs(grad), 1e12+1)
	}
}

func TestBCEForward(t *testing.T) {
	pred := autodiff.NewLeaf(tensor.FromSlice([]float64{0.8, 0.3}, tensor.Shape{2, 1}))
	target := autodiff.NewLeaf(tensor.FromSlice([]float64{1, 0}, tensor.Shape{2, 1}))

	loss := ops.BCE(pred, target)
	expected := -(math.Log(0.8) + math.Log(0.7))
	assert.InDelta(t, expected, loss.Item(), 1e-12)
}
