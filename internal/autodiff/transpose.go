package autodiff

import "github.com/axon-ml/axon/internal/tensor"

// transposeOp: output = xᵗ.
//
// Transposing the output gradient undoes the forward transpose. The
// operation must participate in the graph even though it looks like a
// view: a linear layer multiplies by Wᵗ, and without this op the weight
// leaf would never receive a gradient.
type transposeOp struct{}

// Transpose returns the transpose of a 2-D node.
func Transpose(x *Node) *Node {
	out := x.Value().Transpose()
	return newNode(out, transposeOp{}, x)
}

func (transposeOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{outputGrad.Transpose()}
}
