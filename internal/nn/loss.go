package nn

import (
	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff/ops"
)

// Loss is the terminal piece of a training graph: it consumes a
// prediction and a target node and produces the scalar node the backward
// pass is seeded from. Losses own no trainable state.
type Loss interface {
	Forward(pred, target *autodiff.Node) *autodiff.Node
	Parameters() []*autodiff.Node
}

// MSELoss computes 0.5 * sum((pred - target)^2) over the batch
// dimension. Summed, not averaged; callers scale by batch size
// themselves.
type MSELoss struct{}

// NewMSELoss creates an MSE loss.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward computes the loss node.
func (m *MSELoss) Forward(pred, target *autodiff.Node) *autodiff.Node {
	return ops.MSE(pred, target)
}

// Parameters returns nil (losses own no trainable state).
func (m *MSELoss) Parameters() []*autodiff.Node {
	return nil
}

// BCELoss computes binary cross-entropy over the batch dimension.
// Predictions must lie in [0, 1]; see ops.BCE for the stability guards.
type BCELoss struct{}

// NewBCELoss creates a BCE loss.
func NewBCELoss() *BCELoss {
	return &BCELoss{}
}

// Forward computes the loss node.
func (b *BCELoss) Forward(pred, target *autodiff.Node) *autodiff.Node {
	return ops.BCE(pred, target)
}

// Parameters returns nil (losses own no trainable state).
func (b *BCELoss) Parameters() []*autodiff.Node {
	return nil
}

// WithAuxiliary combines a primary loss node with weighted auxiliary loss
// nodes: total = primary + weight * sum(aux). The weight scales the
// auxiliary gradient contribution before it is summed into the shared
// backbone's gradient.
//
// Loss nodes are per-feature rows, so every term is reduced to a single
// element before combining; the reduction leaves the gradients
// untouched.
func WithAuxiliary(primary *autodiff.Node, weight float64, aux ...*autodiff.Node) *autodiff.Node {
	if len(aux) == 0 {
		return primary
	}
	combined := ops.Sum(aux[0])
	for _, a := range aux[1:] {
		combined = ops.Add(combined, ops.Sum(a))
	}
	return ops.AddScaled(ops.Sum(primary), combined, weight)
}
