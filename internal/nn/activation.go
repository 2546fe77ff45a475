package nn

import (
	"github.com/axon-ml/axon/internal/autodiff"
)

// ReLU applies max(0, x) element-wise. Stateless.
type ReLU struct{}

// NewReLU creates a ReLU activation stage.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies the rectification.
func (*ReLU) Forward(input *autodiff.Node) *autodiff.Node {
	return autodiff.ReLU(input)
}

// Parameters returns an empty slice; ReLU has no trainable state.
func (*ReLU) Parameters() []*Parameter {
	return nil
}

// LogSoftmax normalizes each row of [batch, classes] logits into
// log-probabilities. Stateless.
type LogSoftmax struct{}

// NewLogSoftmax creates a LogSoftmax stage.
func NewLogSoftmax() *LogSoftmax {
	return &LogSoftmax{}
}

// Forward applies the numerically stable log-softmax along the class
// dimension; each output row's probabilities sum to 1.
func (*LogSoftmax) Forward(input *autodiff.Node) *autodiff.Node {
	return autodiff.LogSoftmax(input)
}

// Parameters returns an empty slice; LogSoftmax has no trainable state.
func (*LogSoftmax) Parameters() []*Parameter {
	return nil
}
