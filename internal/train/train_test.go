package train_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LaviSchlyter/Deep-learning-project/internal/data"
	"github.com/LaviSchlyter/Deep-learning-project/internal/nn"
	"github.com/LaviSchlyter/Deep-learning-project/internal/optim"
	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
	"github.com/LaviSchlyter/Deep-learning-project/internal/train"
)

func TestErrorRate(t *testing.T) {
	pred := tensor.FromSlice([]float64{0.9, 0.2, 0.6, 0.4}, tensor.Shape{4, 1})
	target := tensor.FromSlice([]float64{1, 0, 0, 1}, tensor.Shape{4, 1})

	assert.Equal(t, 0.5, train.ErrorRate(pred, target))
	assert.Equal(t, 0.0, train.ErrorRate(target, target))
}

func TestErrorRate_ShapeMismatchPanics(t *testing.T) {
	pred := tensor.Zeros(tensor.Shape{4, 1})
	target := tensor.Zeros(tensor.Shape{3, 1})

	assert.Panics(t, func() { train.ErrorRate(pred, target) })
}

func TestRun_DiscLossDecreases(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	set := data.NewDiscSet(200, rng)

	model := nn.NewSequential(
		nn.NewLinear(2, 25),
		nn.NewReLU(),
		nn.NewLinear(25, 1),
		nn.NewSigmoid(),
	)
	opt := optim.NewSGD(model.Parameters(), optim.Config{LR: 0.05})

	history := train.Run(train.Config{Epochs: 100}, model, opt, nn.NewMSELoss(), set)

	require.Len(t, history, 100)
	assert.Less(t, history[99].TrainLoss, history[0].TrainLoss)
	assert.Less(t, history[99].TrainError, 0.5)
}

func TestRun_AuxiliaryLoss(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	set := data.NewPairSet(150, rng)

	model := nn.NewWeightShare(
		nn.NewSequential(nn.NewLinear(10, 10), nn.NewSigmoid()),
		nn.NewSequential(nn.NewLinear(20, 1), nn.NewSigmoid()),
	)
	opt := optim.NewSGD(model.Parameters(), optim.Config{LR: 0.05})

	history := train.Run(train.Config{Epochs: 50, AuxWeight: 0.5}, model, opt, nn.NewBCELoss(), set)

	require.Len(t, history, 50)
	assert.Less(t, history[49].TrainLoss, history[0].TrainLoss)
}

func TestRun_AuxWeightIgnoredWithoutBranchTargets(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	set := data.NewDiscSet(50, rng)

	model := nn.NewSequential(nn.NewLinear(2, 1), nn.NewSigmoid())
	opt := optim.NewSGD(model.Parameters(), optim.Config{LR: 0.1})

	history := train.Run(train.Config{Epochs: 5, AuxWeight: 1}, model, opt, nn.NewMSELoss(), set)

	require.Len(t, history, 5)
}
