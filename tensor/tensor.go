// Package tensor provides the public API for the rank-2 float64
// tensors the framework computes on.
//
// Example:
//
//	x := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	y := x.MatMul(x.Transpose())
package tensor

import (
	"math/rand"

	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

// Shape represents the dimensions of a tensor: rows then columns.
type Shape = tensor.Shape

// Tensor is a dense rank-2 array of float64 values.
type Tensor = tensor.Tensor

// New creates a zero-filled tensor of the given shape.
func New(shape Shape) *Tensor {
	return tensor.New(shape)
}

// FromSlice creates a tensor holding a copy of data, which must have
// exactly shape.Size() values.
func FromSlice(data []float64, shape Shape) *Tensor {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with value.
func Full(shape Shape, value float64) *Tensor {
	return tensor.Full(shape, value)
}

// ZerosLike creates a zero tensor with the same shape as t.
func ZerosLike(t *Tensor) *Tensor {
	return tensor.ZerosLike(t)
}

// OnesLike creates a ones tensor with the same shape as t.
func OnesLike(t *Tensor) *Tensor {
	return tensor.OnesLike(t)
}

// Uniform creates a tensor with values drawn uniformly from [lo, hi).
func Uniform(shape Shape, lo, hi float64, rng *rand.Rand) *Tensor {
	return tensor.Uniform(shape, lo, hi, rng)
}
