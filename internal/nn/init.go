package nn

import (
	"math"
	"math/rand"

	"github.com/axon-ml/axon/internal/tensor"
)

// Xavier initializes a tensor with values drawn from the Glorot uniform
// distribution U(-bound, bound) with bound = sqrt(6 / (fanIn + fanOut)).
// Scaling by the layer dimensions keeps activation variance roughly
// constant across layers.
func Xavier(fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand) *tensor.Tensor {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	t := tensor.Zeros(shape)
	data := t.Data()
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * bound
	}
	return t
}

// Zeros creates a zero tensor, the conventional bias initialization.
func Zeros(shape tensor.Shape) *tensor.Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape tensor.Shape) *tensor.Tensor {
	return tensor.Ones(shape)
}
