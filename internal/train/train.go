// Package train runs full-batch gradient descent experiments and
// reports per-epoch loss and error on both splits.
package train

import (
	"k8s.io/klog/v2"

	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
	"github.com/LaviSchlyter/Deep-learning-project/internal/data"
	"github.com/LaviSchlyter/Deep-learning-project/internal/nn"
	"github.com/LaviSchlyter/Deep-learning-project/internal/optim"
	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

// Config controls a training run.
type Config struct {
	Epochs int

	// AuxWeight scales the per-branch auxiliary losses. Zero disables
	// them. Only models implementing BranchModel can use auxiliary
	// losses, and only on sets that carry branch targets.
	AuxWeight float64
}

// Epoch records the metrics of one training epoch, measured before the
// parameter update for the train split and after it for the test split.
type Epoch struct {
	TrainLoss  float64
	TrainError float64
	TestLoss   float64
	TestError  float64
}

// BranchModel is a model that exposes its per-branch outputs alongside
// the final prediction, for auxiliary losses on the branches.
type BranchModel interface {
	nn.Module
	ForwardBranches(input *autodiff.Node) (out, outA, outB *autodiff.Node)
}

// ErrorRate returns the fraction of rows where the 0.5-thresholded
// prediction disagrees with the 0.5-thresholded target.
func ErrorRate(pred, target *tensor.Tensor) float64 {
	if !pred.Shape().Equal(target.Shape()) {
		panic("train: ErrorRate: shape mismatch " + pred.Shape().String() + " vs " + target.Shape().String())
	}
	wrong := 0
	rows := pred.Shape().Rows()
	for i := 0; i < rows; i++ {
		for j := 0; j < pred.Shape().Cols(); j++ {
			if (pred.At(i, j) > 0.5) != (target.At(i, j) > 0.5) {
				wrong++
			}
		}
	}
	return float64(wrong) / float64(rows*pred.Shape().Cols())
}

// Run trains model on set's training split for cfg.Epochs epochs of
// full-batch gradient descent and returns the per-epoch history.
//
// Each epoch zeroes the gradients, runs a forward pass on the training
// split, backpropagates the loss (plus MSE auxiliary losses on the
// branch outputs when configured) and applies one optimizer step.
func Run(cfg Config, model nn.Module, opt optim.Optimizer, loss nn.Loss, set *data.Set) []Epoch {
	history := make([]Epoch, 0, cfg.Epochs)
	auxLoss := nn.NewMSELoss()

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		opt.ZeroGrad()

		input := autodiff.NewLeaf(set.TrainInput)
		target := autodiff.NewLeaf(set.TrainTarget)

		var out *autodiff.Node
		var total *autodiff.Node
		if branched, ok := model.(BranchModel); ok && cfg.AuxWeight > 0 && len(set.TrainAux) == 2 {
			var outA, outB *autodiff.Node
			out, outA, outB = branched.ForwardBranches(input)
			total = nn.WithAuxiliary(loss.Forward(out, target), cfg.AuxWeight,
				auxLoss.Forward(outA, autodiff.NewLeaf(set.TrainAux[0])),
				auxLoss.Forward(outB, autodiff.NewLeaf(set.TrainAux[1])))
		} else {
			out = model.Forward(input)
			total = loss.Forward(out, target)
		}
		total.Backward(nil)
		opt.Step()

		testOut := model.Forward(autodiff.NewLeaf(set.TestInput))
		testLoss := loss.Forward(testOut, autodiff.NewLeaf(set.TestTarget))

		record := Epoch{
			TrainLoss:  total.Value().Sum(),
			TrainError: ErrorRate(out.Value(), set.TrainTarget),
			TestLoss:   testLoss.Value().Sum(),
			TestError:  ErrorRate(testOut.Value(), set.TestTarget),
		}
		history = append(history, record)

		klog.Infof("epoch %d/%d train_loss=%.4f train_err=%.4f test_loss=%.4f test_err=%.4f",
			epoch, cfg.Epochs, record.TrainLoss, record.TrainError, record.TestLoss, record.TestError)
	}
	return history
}
