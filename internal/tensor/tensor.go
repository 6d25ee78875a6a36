// Package tensor implements the dense numeric buffer the autodiff engine
// is built on.
//
// Tensors are rank-2 float64 arrays with value semantics on every
// operation: Add, MatMul and friends always allocate a new result and
// never modify their operands. Matrix products and transposes delegate to
// gonum's mat package; elementwise arithmetic uses gonum's floats helpers.
//
// Shape mismatches are programmer errors and panic immediately rather
// than being broadcast away.
package tensor

import (
	"encoding/json"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Tensor is a dense rank-2 float64 array in row-major layout.
type Tensor struct {
	shape Shape
	data  []float64
}

// New creates a zero-filled tensor with the given shape.
func New(shape Shape) *Tensor {
	shape.validate()
	return &Tensor{
		shape: Shape{shape[0], shape[1]},
		data:  make([]float64, shape.Size()),
	}
}

// FromSlice creates a tensor with the given shape, copying data.
//
// Panics if len(data) does not match the shape size.
func FromSlice(data []float64, shape Shape) *Tensor {
	shape.validate()
	if len(data) != shape.Size() {
		panic(fmt.Sprintf("tensor: FromSlice: %d values for shape %v", len(data), shape))
	}
	t := New(shape)
	copy(t.data, data)
	return t
}

// Shape returns the tensor shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Rows returns the batch dimension.
func (t *Tensor) Rows() int {
	return t.shape.Rows()
}

// Cols returns the feature dimension.
func (t *Tensor) Cols() int {
	return t.shape.Cols()
}

// Data returns the backing slice in row-major order.
//
// Mutating it mutates the tensor; only the optimizer should do that.
func (t *Tensor) Data() []float64 {
	return t.data
}

// At returns the element at row i, column j.
func (t *Tensor) At(i, j int) float64 {
	return t.data[i*t.shape.Cols()+j]
}

// Set assigns the element at row i, column j.
func (t *Tensor) Set(i, j int, v float64) {
	t.data[i*t.shape.Cols()+j] = v
}

// Item extracts the value of a single-element tensor.
//
// Panics if the tensor holds more than one element.
func (t *Tensor) Item() float64 {
	if t.shape.Size() != 1 {
		panic(fmt.Sprintf("tensor: Item called on tensor with shape %v", t.shape))
	}
	return t.data[0]
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	return FromSlice(t.data, t.shape)
}

// String returns a compact representation for debugging.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v%v", t.shape, t.data)
}

// dense views the tensor as a gonum matrix sharing the backing slice.
func (t *Tensor) dense() *mat.Dense {
	return mat.NewDense(t.shape.Rows(), t.shape.Cols(), t.data)
}

// tensorJSON is the serialized form used by checkpoints.
type tensorJSON struct {
	Shape Shape     `json:"shape"`
	Data  []float64 `json:"data"`
}

// MarshalJSON implements json.Marshaler.
func (t *Tensor) MarshalJSON() ([]byte, error) {
	return json.Marshal(tensorJSON{Shape: t.shape, Data: t.data})
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tensor) UnmarshalJSON(b []byte) error {
	var raw tensorJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw.Shape) != 2 {
		return fmt.Errorf("tensor: invalid serialized shape %v", raw.Shape)
	}
	if len(raw.Data) != raw.Shape.Size() {
		return fmt.Errorf("tensor: %d values for serialized shape %v", len(raw.Data), raw.Shape)
	}
	t.shape = Shape{raw.Shape[0], raw.Shape[1]}
	t.data = raw.Data
	return nil
}
