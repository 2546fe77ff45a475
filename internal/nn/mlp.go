package nn

import (
	"fmt"
	"math/rand"
)

// NewMLP builds a feed-forward classifier from an ordered list of layer
// sizes: Linear+ReLU for each hidden transition, a final Linear, and a
// trailing LogSoftmax so the network outputs log-probabilities.
//
// sizes[0] is the feature dimension, sizes[len-1] the class count; at
// least two sizes are required and all must be positive.
func NewMLP(sizes []int, rng *rand.Rand) (*Sequential, error) {
	if len(sizes) < 2 {
		return nil, fmt.Errorf("nn: NewMLP needs at least input and output sizes, got %v", sizes)
	}
	for i, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("nn: NewMLP layer size at index %d must be > 0, got %d", i, s)
		}
	}

	model := NewSequential()
	for i := 0; i < len(sizes)-1; i++ {
		model.Add(NewLinear(sizes[i], sizes[i+1], rng))
		if i < len(sizes)-2 {
			model.Add(NewReLU())
		}
	}
	model.Add(NewLogSoftmax())
	return model, nil
}
