// Package nn provides the public API for building and training neural
// networks: layers, activations, containers, losses and checkpoints.
//
// Example:
//
//	model := nn.NewSequential(
//		nn.NewLinear(2, 25),
//		nn.NewReLU(),
//		nn.NewLinear(25, 1),
//		nn.NewSigmoid(),
//	)
//	out := model.Forward(autodiff.NewLeaf(input))
package nn

import (
	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
	"github.com/LaviSchlyter/Deep-learning-project/internal/nn"
	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

// Module is the interface all layers and containers implement.
type Module = nn.Module

// Linear is a fully connected layer.
type Linear = nn.Linear

// ReLU, Tanh and Sigmoid are parameter-free activation modules.
type (
	ReLU    = nn.ReLU
	Tanh    = nn.Tanh
	Sigmoid = nn.Sigmoid
)

// Sequential chains modules, feeding each output into the next module.
type Sequential = nn.Sequential

// Preprocess runs two independent branches over the two halves of its
// input before a combining head.
type Preprocess = nn.Preprocess

// WeightShare runs the same branch over both halves of its input
// before a combining head.
type WeightShare = nn.WeightShare

// Loss maps a prediction and a target to a loss node.
type Loss = nn.Loss

// MSELoss is the mean squared error criterion.
type MSELoss = nn.MSELoss

// BCELoss is the binary cross-entropy criterion.
type BCELoss = nn.BCELoss

// StateDicter is implemented by modules whose parameters can be
// snapshotted and restored.
type StateDicter = nn.StateDicter

// Checkpoint is a saved snapshot of model parameters plus run metadata.
type Checkpoint = nn.Checkpoint

// NewLinear creates a fully connected layer with Xavier-initialized
// weights and zero biases.
func NewLinear(inFeatures, outFeatures int) *Linear {
	return nn.NewLinear(inFeatures, outFeatures)
}

// NewReLU creates a ReLU activation.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// NewTanh creates a Tanh activation.
func NewTanh() *Tanh {
	return nn.NewTanh()
}

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// NewSequential creates a container running modules in order.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// NewPreprocess creates a two-branch model with independent branches.
func NewPreprocess(branchA, branchB, head Module) *Preprocess {
	return nn.NewPreprocess(branchA, branchB, head)
}

// NewWeightShare creates a two-branch model sharing one branch's
// parameters across both inputs.
func NewWeightShare(branch, head Module) *WeightShare {
	return nn.NewWeightShare(branch, head)
}

// NewMSELoss creates an MSE loss.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// NewBCELoss creates a BCE loss.
func NewBCELoss() *BCELoss {
	return nn.NewBCELoss()
}

// WithAuxiliary combines a primary loss with weighted auxiliary losses
// into a single scalar node.
func WithAuxiliary(primary *autodiff.Node, weight float64, aux ...*autodiff.Node) *autodiff.Node {
	return nn.WithAuxiliary(primary, weight, aux...)
}

// Xavier creates a tensor initialized with the Xavier uniform scheme
// for the given fan-in and fan-out.
func Xavier(fanIn, fanOut int, shape tensor.Shape) *tensor.Tensor {
	return nn.Xavier(fanIn, fanOut, shape)
}

// SaveCheckpoint writes the model's parameters and run metadata to a
// JSON file.
func SaveCheckpoint(path string, model Module, epoch int, loss float64) error {
	return nn.SaveCheckpoint(path, model, epoch, loss)
}

// LoadCheckpoint reads a checkpoint file and restores the model's
// parameters from it.
func LoadCheckpoint(path string, model Module) (*Checkpoint, error) {
	return nn.LoadCheckpoint(path, model)
}
