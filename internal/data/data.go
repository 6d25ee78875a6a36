// Package data provides the synthetic datasets used by the training
// experiments: a 2-D disc classification task and a digit-pair
// comparison task with per-branch class targets for auxiliary losses.
package data

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

// discRadius is the radius of the target disc, chosen so the disc
// covers half of the unit square.
var discRadius = math.Sqrt(1 / (2 * math.Pi))

// pairNoiseStd is the standard deviation of the Gaussian noise added to
// the one-hot digit encodings in the pair task.
const pairNoiseStd = 0.1

// Set bundles the train and test splits for one task.
type Set struct {
	TrainInput  *tensor.Tensor
	TrainTarget *tensor.Tensor
	TestInput   *tensor.Tensor
	TestTarget  *tensor.Tensor

	// Per-branch digit class targets for the pair task, in branch
	// order. Nil for tasks without auxiliary targets.
	TrainAux []*tensor.Tensor
	TestAux  []*tensor.Tensor
}

// GenerateDiscSet samples n points uniformly from the unit square. The
// target is 1 for points inside the disc of radius sqrt(1/(2*pi))
// centered at (0.5, 0.5) and 0 outside, so both classes are equally
// likely.
func GenerateDiscSet(n int, rng *rand.Rand) (input, target *tensor.Tensor) {
	input = tensor.Uniform(tensor.Shape{n, 2}, 0, 1, rng)
	target = tensor.Zeros(tensor.Shape{n, 1})
	for i := 0; i < n; i++ {
		dx := input.At(i, 0) - 0.5
		dy := input.At(i, 1) - 0.5
		if dx*dx+dy*dy <= discRadius*discRadius {
			target.Set(i, 0, 1)
		}
	}
	return input, target
}

// GeneratePairSet samples n digit pairs. Each example is two digits in
// [0, 10) encoded as noisy one-hot vectors laid out side by side, so the
// input has 20 columns. The target is 1 when the first digit is less
// than or equal to the second. The returned class targets are the clean
// one-hot encodings of each digit, for use as auxiliary loss targets.
func GeneratePairSet(n int, rng *rand.Rand) (input, target, classA, classB *tensor.Tensor) {
	input = tensor.Zeros(tensor.Shape{n, 20})
	target = tensor.Zeros(tensor.Shape{n, 1})
	classA = tensor.Zeros(tensor.Shape{n, 10})
	classB = tensor.Zeros(tensor.Shape{n, 10})
	for i := 0; i < n; i++ {
		a := rng.Intn(10)
		b := rng.Intn(10)
		classA.Set(i, a, 1)
		classB.Set(i, b, 1)
		if a <= b {
			target.Set(i, 0, 1)
		}
		for j := 0; j < 10; j++ {
			input.Set(i, j, classA.At(i, j)+rng.NormFloat64()*pairNoiseStd)
			input.Set(i, 10+j, classB.At(i, j)+rng.NormFloat64()*pairNoiseStd)
		}
	}
	return input, target, classA, classB
}

// Normalize standardizes both inputs by the mean and standard deviation
// of the training input, returning normalized copies. The test split
// must use the training statistics so the model never sees test
// statistics during training.
func Normalize(train, test *tensor.Tensor) (*tensor.Tensor, *tensor.Tensor) {
	mean, std := stat.MeanStdDev(train.Data(), nil)
	if std == 0 {
		std = 1
	}
	normalize := func(v float64) float64 { return (v - mean) / std }
	return train.Apply(normalize), test.Apply(normalize)
}

// NewDiscSet generates normalized train and test splits of n disc
// examples each.
func NewDiscSet(n int, rng *rand.Rand) *Set {
	trainInput, trainTarget := GenerateDiscSet(n, rng)
	testInput, testTarget := GenerateDiscSet(n, rng)
	trainInput, testInput = Normalize(trainInput, testInput)
	return &Set{
		TrainInput:  trainInput,
		TrainTarget: trainTarget,
		TestInput:   testInput,
		TestTarget:  testTarget,
	}
}

// NewPairSet generates normalized train and test splits of n digit
// pairs each, with per-branch class targets for auxiliary losses.
func NewPairSet(n int, rng *rand.Rand) *Set {
	trainInput, trainTarget, trainA, trainB := GeneratePairSet(n, rng)
	testInput, testTarget, testA, testB := GeneratePairSet(n, rng)
	trainInput, testInput = Normalize(trainInput, testInput)
	return &Set{
		TrainInput:  trainInput,
		TrainTarget: trainTarget,
		TestInput:   testInput,
		TestTarget:  testTarget,
		TrainAux:    []*tensor.Tensor{trainA, trainB},
		TestAux:     []*tensor.Tensor{testA, testB},
	}
}
