package autodiff

import (
	"errors"
	"fmt"

	"github.com/axon-ml/axon/internal/tensor"
)

// ErrLabelOutOfRange reports a class label outside [0, numClasses).
// It indicates corrupt input data, not a transient condition: callers
// should abort the run rather than retry.
var ErrLabelOutOfRange = errors.New("autodiff: class label out of range")

// nllOp: output = -mean over the batch of logProbs[b, labels[b]].
//
// d(loss)/d(logProbs[b,i]) = -1/batch where i == labels[b], else 0.
// Stacked on logSoftmaxOp this composes to the familiar
// (softmax - onehot) / batch gradient for the logits.
type nllOp struct {
	shape  tensor.Shape
	labels []int
}

// NLL computes the negative log-likelihood loss from log-probabilities
// [batch, classes] and integer class labels of length batch. It returns
// ErrLabelOutOfRange (wrapped) before any node is built if a label falls
// outside [0, classes).
func NLL(logProbs *Node, labels []int) (*Node, error) {
	shape := logProbs.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("autodiff: NLL requires 2D log-probabilities [batch, classes], got shape %v", shape)
	}
	batch, classes := shape[0], shape[1]
	if len(labels) != batch {
		return nil, fmt.Errorf("autodiff: NLL got %d labels for batch size %d", len(labels), batch)
	}
	for i, label := range labels {
		if label < 0 || label >= classes {
			return nil, fmt.Errorf("%w: label %d at index %d, want [0, %d)", ErrLabelOutOfRange, label, i, classes)
		}
	}

	data := logProbs.Value().Data()
	total := 0.0
	for b, label := range labels {
		total += data[b*classes+label]
	}
	out := tensor.Scalar(-total / float64(batch))

	held := make([]int, len(labels))
	copy(held, labels)
	return newNode(out, &nllOp{shape: shape.Clone(), labels: held}, logProbs), nil
}

func (op *nllOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	batch, classes := op.shape[0], op.shape[1]
	scale := -outputGrad.Item() / float64(batch)

	grad := tensor.Zeros(op.shape)
	gradData := grad.Data()
	for b, label := range op.labels {
		gradData[b*classes+label] = scale
	}
	return []*tensor.Tensor{grad}
}
