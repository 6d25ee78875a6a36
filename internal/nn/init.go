package nn

import (
	"math"
	"math/rand"

	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

// Xavier initializes a weight tensor with values drawn uniformly from
// U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))), which keeps the
// variance of activations roughly constant across layers.
func Xavier(fanIn, fanOut int, shape tensor.Shape) *tensor.Tensor {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	t := tensor.New(shape)
	data := t.Data()
	for i := range data {
		//nolint:gosec // math/rand is fine for weight initialization
		data[i] = (rand.Float64()*2.0 - 1.0) * bound
	}
	return t
}
