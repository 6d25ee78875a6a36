// Package autodiff implements reverse-mode automatic differentiation over
// a dynamically built computation graph.
//
// Every differentiable operation produces a new Node wrapping its result
// and a GradFunc that knows the operation's derivative rule. Calling
// Backward on the graph root walks the graph depth-first through those
// grad functions, accumulating gradients additively on every node it
// reaches.
//
// There is no topological scheduler and no visited set: because gradients
// accumulate with += instead of being overwritten, reaching a shared node
// through several paths sums the contribution of each path, which is
// exactly the multivariate chain rule. The engine therefore handles
// weight sharing for free, at the cost of re-traversing shared subgraphs.
// The networks built on top of it are a handful of layers deep, so the
// recursion stays shallow.
//
// Usage:
//
//	x := autodiff.NewLeaf(tensor.FromSlice([]float64{2}, tensor.Shape{1, 1}))
//	y := ops.Tanh(x)
//	y.Backward(nil) // seed with ones
//	fmt.Println(x.Grad())
package autodiff

import (
	"fmt"

	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

// GradFunc is the reverse-mode derivative rule of one forward operation,
// bound to that operation's inputs.
//
// Backward receives the gradient of the loss with respect to the
// operation's output, computes each input's local gradient, and calls
// Backward on each input node with it.
type GradFunc interface {
	Backward(outputGrad *tensor.Tensor)
}

// Node is a point in the computation graph: a computed value plus, for
// non-leaf nodes, the means to propagate gradients to its inputs.
//
// A node's value is immutable after creation; operations always produce
// new nodes. Only the gradient accumulator is mutated, and only
// additively, by Backward. The exception is trainable parameters, whose
// values the optimizer rewrites in place between steps.
type Node struct {
	value  *tensor.Tensor
	grad   *tensor.Tensor
	gradFn GradFunc
}

// NewLeaf creates a leaf node: a trainable parameter, a network input, or
// a value deliberately cut off from the graph.
func NewLeaf(value *tensor.Tensor) *Node {
	return NewNode(value, nil)
}

// NewNode creates a node holding value, with gradFn as its backward
// function. gradFn may be nil for leaves.
func NewNode(value *tensor.Tensor, gradFn GradFunc) *Node {
	if value == nil {
		panic("autodiff: NewNode: nil value")
	}
	return &Node{value: value, gradFn: gradFn}
}

// Value returns the node's tensor value.
func (n *Node) Value() *tensor.Tensor {
	return n.value
}

// Grad returns the accumulated gradient, or nil if Backward has not
// reached this node since the last ZeroGrad.
func (n *Node) Grad() *tensor.Tensor {
	return n.grad
}

// IsLeaf reports whether the node has no backward function.
func (n *Node) IsLeaf() bool {
	return n.gradFn == nil
}

// Item extracts the value of a single-element node.
func (n *Node) Item() float64 {
	return n.value.Item()
}

// Backward accumulates outputGrad into this node's gradient and, for
// non-leaf nodes, propagates it to the inputs via the grad function.
//
// A nil outputGrad seeds the pass with ones, the usual seed for a scalar
// loss at the graph root. The seed shape must match the value shape;
// anything else is a contract violation and panics.
//
// Gradients are never reset implicitly: calling Backward twice sums both
// contributions. Callers that want fresh gradients zero them explicitly,
// typically through the optimizer.
func (n *Node) Backward(outputGrad *tensor.Tensor) {
	if outputGrad == nil {
		outputGrad = tensor.OnesLike(n.value)
	}
	if !outputGrad.Shape().Equal(n.value.Shape()) {
		panic(fmt.Sprintf("autodiff: Backward: gradient shape %v does not match value shape %v",
			outputGrad.Shape(), n.value.Shape()))
	}

	if n.grad == nil {
		n.grad = tensor.ZerosLike(n.value)
	}
	n.grad = n.grad.Add(outputGrad)

	if n.gradFn != nil {
		n.gradFn.Backward(outputGrad)
	}
}

// ZeroGrad resets the gradient accumulator.
func (n *Node) ZeroGrad() {
	n.grad = nil
}
