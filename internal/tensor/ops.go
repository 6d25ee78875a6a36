package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// checkSameShape panics unless a and b have identical shapes.
func checkSameShape(op string, a, b *Tensor) {
	if !a.shape.Equal(b.shape) {
		panic(fmt.Sprintf("tensor: %s: shape mismatch %v vs %v", op, a.shape, b.shape))
	}
}

// Add returns t + other elementwise.
func (t *Tensor) Add(other *Tensor) *Tensor {
	checkSameShape("Add", t, other)
	out := New(t.shape)
	floats.AddTo(out.data, t.data, other.data)
	return out
}

// Sub returns t - other elementwise.
func (t *Tensor) Sub(other *Tensor) *Tensor {
	checkSameShape("Sub", t, other)
	out := New(t.shape)
	floats.SubTo(out.data, t.data, other.data)
	return out
}

// Mul returns t * other elementwise.
func (t *Tensor) Mul(other *Tensor) *Tensor {
	checkSameShape("Mul", t, other)
	out := New(t.shape)
	floats.MulTo(out.data, t.data, other.data)
	return out
}

// Scale returns c * t.
func (t *Tensor) Scale(c float64) *Tensor {
	out := New(t.shape)
	floats.ScaleTo(out.data, c, t.data)
	return out
}

// AddScaled returns t + c*other.
func (t *Tensor) AddScaled(other *Tensor, c float64) *Tensor {
	checkSameShape("AddScaled", t, other)
	out := New(t.shape)
	floats.AddScaledTo(out.data, t.data, c, other.data)
	return out
}

// Apply returns a tensor with f applied to every element.
func (t *Tensor) Apply(f func(float64) float64) *Tensor {
	out := New(t.shape)
	for i, v := range t.data {
		out.data[i] = f(v)
	}
	return out
}

// MatMul returns the matrix product t @ other.
//
// Panics if the inner dimensions do not agree.
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	if t.Cols() != other.Rows() {
		panic(fmt.Sprintf("tensor: MatMul: inner dimension mismatch %v @ %v", t.shape, other.shape))
	}
	out := New(Shape{t.Rows(), other.Cols()})
	out.dense().Mul(t.dense(), other.dense())
	return out
}

// Transpose returns a transposed copy of t.
func (t *Tensor) Transpose() *Tensor {
	out := New(Shape{t.Cols(), t.Rows()})
	out.dense().Copy(t.dense().T())
	return out
}

// Sum returns the sum of all elements.
func (t *Tensor) Sum() float64 {
	return floats.Sum(t.data)
}

// SumRows reduces over the batch dimension, returning a [1, cols] tensor
// of per-column sums.
func (t *Tensor) SumRows() *Tensor {
	out := New(Shape{1, t.Cols()})
	for i := 0; i < t.Rows(); i++ {
		floats.Add(out.data, t.data[i*t.Cols():(i+1)*t.Cols()])
	}
	return out
}

// AddRow returns t with the [1, cols] row tensor added to every row.
func (t *Tensor) AddRow(row *Tensor) *Tensor {
	if row.Rows() != 1 || row.Cols() != t.Cols() {
		panic(fmt.Sprintf("tensor: AddRow: row shape %v does not match %v", row.shape, t.shape))
	}
	out := New(t.shape)
	for i := 0; i < t.Rows(); i++ {
		floats.AddTo(out.data[i*t.Cols():(i+1)*t.Cols()], t.data[i*t.Cols():(i+1)*t.Cols()], row.data)
	}
	return out
}

// MulRow returns t with every row multiplied elementwise by the [1, cols]
// row tensor.
func (t *Tensor) MulRow(row *Tensor) *Tensor {
	if row.Rows() != 1 || row.Cols() != t.Cols() {
		panic(fmt.Sprintf("tensor: MulRow: row shape %v does not match %v", row.shape, t.shape))
	}
	out := New(t.shape)
	for i := 0; i < t.Rows(); i++ {
		floats.MulTo(out.data[i*t.Cols():(i+1)*t.Cols()], t.data[i*t.Cols():(i+1)*t.Cols()], row.data)
	}
	return out
}

// ConcatCols returns t and other stacked along the column dimension.
//
// Panics unless both tensors have the same number of rows.
func (t *Tensor) ConcatCols(other *Tensor) *Tensor {
	if t.Rows() != other.Rows() {
		panic(fmt.Sprintf("tensor: ConcatCols: row mismatch %v vs %v", t.shape, other.shape))
	}
	out := New(Shape{t.Rows(), t.Cols() + other.Cols()})
	for i := 0; i < t.Rows(); i++ {
		copy(out.data[i*out.Cols():], t.data[i*t.Cols():(i+1)*t.Cols()])
		copy(out.data[i*out.Cols()+t.Cols():], other.data[i*other.Cols():(i+1)*other.Cols()])
	}
	return out
}

// SliceCols returns a copy of columns [from, to).
func (t *Tensor) SliceCols(from, to int) *Tensor {
	if from < 0 || to > t.Cols() || from >= to {
		panic(fmt.Sprintf("tensor: SliceCols: bounds [%d, %d) invalid for %v", from, to, t.shape))
	}
	out := New(Shape{t.Rows(), to - from})
	for i := 0; i < t.Rows(); i++ {
		copy(out.data[i*out.Cols():(i+1)*out.Cols()], t.data[i*t.Cols()+from:i*t.Cols()+to])
	}
	return out
}

// EmbedCols places t into a zero tensor with totalCols columns, starting
// at column from. It is the adjoint of SliceCols.
func (t *Tensor) EmbedCols(totalCols, from int) *Tensor {
	if from < 0 || from+t.Cols() > totalCols {
		panic(fmt.Sprintf("tensor: EmbedCols: offset %d invalid for %v into %d columns", from, t.shape, totalCols))
	}
	out := New(Shape{t.Rows(), totalCols})
	for i := 0; i < t.Rows(); i++ {
		copy(out.data[i*totalCols+from:], t.data[i*t.Cols():(i+1)*t.Cols()])
	}
	return out
}
