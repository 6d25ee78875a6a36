package nn

import (
	"fmt"

	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff/ops"
	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

// splitInput slices the input columns into its two streams. The input
// carries both streams side by side: [batch, 2*streamWidth].
func splitInput(input *autodiff.Node) (a, b *autodiff.Node) {
	cols := input.Value().Cols()
	if cols%2 != 0 {
		panic(fmt.Sprintf("nn: dual-input module needs an even number of input columns, got %d", cols))
	}
	half := cols / 2
	return ops.SliceCols(input, 0, half), ops.SliceCols(input, half, cols)
}

// Preprocess is the "duplicated" dual-input model: each of the two input
// streams is consumed by its own independently parameterized branch, and
// the branch outputs are concatenated into a shared output head.
type Preprocess struct {
	branchA Module
	branchB Module
	head    Module
}

// NewPreprocess creates a dual-branch model from two branch modules and
// an output head.
func NewPreprocess(branchA, branchB, head Module) *Preprocess {
	return &Preprocess{branchA: branchA, branchB: branchB, head: head}
}

// Forward splits the input into its two streams and runs them through
// the branches and the head.
func (p *Preprocess) Forward(input *autodiff.Node) *autodiff.Node {
	out, _, _ := p.ForwardBranches(input)
	return out
}

// ForwardBranches is Forward but also returns the per-branch intermediate
// outputs, which auxiliary losses are computed on.
func (p *Preprocess) ForwardBranches(input *autodiff.Node) (out, outA, outB *autodiff.Node) {
	a, b := splitInput(input)
	outA = p.branchA.Forward(a)
	outB = p.branchB.Forward(b)
	out = p.head.Forward(ops.Concat(outA, outB))
	return out, outA, outB
}

// Parameters returns branch-A, branch-B and head parameters, disjoint by
// construction.
func (p *Preprocess) Parameters() []*autodiff.Node {
	var params []*autodiff.Node
	params = append(params, p.branchA.Parameters()...)
	params = append(params, p.branchB.Parameters()...)
	params = append(params, p.head.Parameters()...)
	return params
}

// StateDict returns the branch and head parameters, prefixed with
// "branch_a.", "branch_b." and "head.".
func (p *Preprocess) StateDict() map[string]*tensor.Tensor {
	state := make(map[string]*tensor.Tensor)
	for prefix, module := range map[string]Module{"branch_a.": p.branchA, "branch_b.": p.branchB, "head.": p.head} {
		if sd, ok := module.(StateDicter); ok {
			prefixInto(state, prefix, sd.StateDict())
		}
	}
	return state
}

// LoadStateDict restores the branch and head parameters.
func (p *Preprocess) LoadStateDict(state map[string]*tensor.Tensor) error {
	for prefix, module := range map[string]Module{"branch_a.": p.branchA, "branch_b.": p.branchB, "head.": p.head} {
		sd, ok := module.(StateDicter)
		if !ok {
			continue
		}
		if err := sd.LoadStateDict(subState(state, prefix)); err != nil {
			return fmt.Errorf("nn: Preprocess: %s %w", prefix, err)
		}
	}
	return nil
}

// WeightShare is the weight-shared dual-input model: one branch module is
// invoked once per input stream, so both streams are transformed by the
// same parameters. Each invocation is an independent forward pass
// producing its own graph nodes; during backward, the shared parameters
// accumulate gradient contributions from both invocations.
type WeightShare struct {
	branch Module
	head   Module
}

// NewWeightShare creates a weight-shared model from one branch module
// and an output head.
func NewWeightShare(branch, head Module) *WeightShare {
	return &WeightShare{branch: branch, head: head}
}

// Forward runs both input streams through the shared branch and the
// concatenated result through the head.
func (w *WeightShare) Forward(input *autodiff.Node) *autodiff.Node {
	out, _, _ := w.ForwardBranches(input)
	return out
}

// ForwardBranches is Forward but also returns the per-branch intermediate
// outputs.
func (w *WeightShare) ForwardBranches(input *autodiff.Node) (out, outA, outB *autodiff.Node) {
	a, b := splitInput(input)
	outA = w.branch.Forward(a)
	outB = w.branch.Forward(b)
	out = w.head.Forward(ops.Concat(outA, outB))
	return out, outA, outB
}

// Parameters returns the shared branch parameters exactly once, followed
// by the head parameters. The branch is used twice per forward pass but
// must not be double-listed.
func (w *WeightShare) Parameters() []*autodiff.Node {
	var params []*autodiff.Node
	params = append(params, w.branch.Parameters()...)
	params = append(params, w.head.Parameters()...)
	return params
}

// StateDict returns the shared branch and head parameters, prefixed with
// "branch." and "head.".
func (w *WeightShare) StateDict() map[string]*tensor.Tensor {
	state := make(map[string]*tensor.Tensor)
	for prefix, module := range map[string]Module{"branch.": w.branch, "head.": w.head} {
		if sd, ok := module.(StateDicter); ok {
			prefixInto(state, prefix, sd.StateDict())
		}
	}
	return state
}

// LoadStateDict restores the shared branch and head parameters.
func (w *WeightShare) LoadStateDict(state map[string]*tensor.Tensor) error {
	for prefix, module := range map[string]Module{"branch.": w.branch, "head.": w.head} {
		sd, ok := module.(StateDicter)
		if !ok {
			continue
		}
		if err := sd.LoadStateDict(subState(state, prefix)); err != nil {
			return fmt.Errorf("nn: WeightShare: %s %w", prefix, err)
		}
	}
	return nil
}
