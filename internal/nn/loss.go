package nn

import (
	"github.com/axon-ml/axon/internal/autodiff"
)

// ErrLabelOutOfRange reports a class label outside [0, numClasses).
var ErrLabelOutOfRange = autodiff.ErrLabelOutOfRange

// NLLLoss computes the negative log-likelihood of integer class labels
// under model log-probabilities (the output of a LogSoftmax stage).
type NLLLoss struct{}

// NewNLLLoss creates an NLL loss function.
func NewNLLLoss() *NLLLoss {
	return &NLLLoss{}
}

// Forward returns the scalar loss node: the negative mean over the batch
// of the log-probability at each example's true class. A label outside
// [0, numClasses) returns an error wrapping ErrLabelOutOfRange; the
// graph is untouched in that case, so no gradient or update can follow.
func (*NLLLoss) Forward(logProbs *autodiff.Node, labels []int) (*autodiff.Node, error) {
	return autodiff.NLL(logProbs, labels)
}
