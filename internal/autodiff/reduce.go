package autodiff

import "github.com/axon-ml/axon/internal/tensor"

// meanOp: output = mean(x), a 0-D scalar.
//
// Each element contributed 1/n of the mean, so the upstream scalar is
// broadcast back as grad/n.
type meanOp struct {
	shape tensor.Shape
}

// Mean reduces x to a 0-D scalar holding the mean of all elements.
func Mean(x *Node) *Node {
	out := x.Value().Mean()
	return newNode(out, &meanOp{shape: x.Shape()}, x)
}

func (op *meanOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	n := float64(op.shape.NumElements())
	return []*tensor.Tensor{tensor.Full(op.shape, outputGrad.Item()/n)}
}

// sumOp: output = sum(x), a 0-D scalar.
type sumOp struct {
	shape tensor.Shape
}

// Sum reduces x to a 0-D scalar holding the sum of all elements.
func Sum(x *Node) *Node {
	out := x.Value().Sum()
	return newNode(out, &sumOp{shape: x.Shape()}, x)
}

func (op *sumOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{tensor.Full(op.shape, outputGrad.Item())}
}
