package tensor

import "fmt"

// Shape describes the dimensions of a tensor.
//
// Every tensor in this package is rank 2: Shape{rows, cols}. Row vectors
// are Shape{1, n} and scalars are Shape{1, 1}. The first dimension is the
// batch dimension by convention.
type Shape []int

// Rows returns the first dimension.
func (s Shape) Rows() int {
	return s[0]
}

// Cols returns the second dimension.
func (s Shape) Cols() int {
	return s[1]
}

// Size returns the total number of elements.
func (s Shape) Size() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Equal returns true if both shapes have the same dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i, dim := range s {
		if dim != other[i] {
			return false
		}
	}
	return true
}

// String returns a human-readable representation like "[2, 3]".
func (s Shape) String() string {
	result := "["
	for i, dim := range s {
		if i > 0 {
			result += ", "
		}
		result += fmt.Sprintf("%d", dim)
	}
	return result + "]"
}

// validate panics unless the shape is a valid rank-2 shape.
func (s Shape) validate() {
	if len(s) != 2 {
		panic(fmt.Sprintf("tensor: shape must be rank 2, got %v", s))
	}
	for _, dim := range s {
		if dim <= 0 {
			panic(fmt.Sprintf("tensor: shape dimensions must be positive, got %v", s))
		}
	}
}
