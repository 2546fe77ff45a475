// Package nn implements the layer stack for feed-forward classifiers:
// trainable parameters, linear and activation stages, sequential
// composition, and the negative log-likelihood loss.
package nn

import (
	"github.com/axon-ml/axon/internal/autodiff"
)

// Module is the base interface for all network stages.
//
// Every stage must implement:
//   - Forward: compute output from input
//   - Parameters: return all trainable parameters, in order
//
// Stages compose into architectures via Sequential:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, rng),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10, rng),
//	    nn.NewLogSoftmax(),
//	)
type Module interface {
	// Forward computes the output of the stage given an input node.
	Forward(input *autodiff.Node) *autodiff.Node

	// Parameters returns all trainable parameters of this stage.
	// Stateless stages return an empty slice.
	Parameters() []*Parameter
}
