package autodiff

import "github.com/axon-ml/axon/internal/tensor"

// powOp: output = x^n.
//
// d(x^n)/dx = n * x^(n-1).
type powOp struct {
	x *tensor.Tensor
	n float64
}

// Pow returns the element-wise power x^n.
func Pow(x *Node, n float64) *Node {
	out := x.Value().Pow(n)
	return newNode(out, &powOp{x: x.Value(), n: n}, x)
}

func (op *powOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	local := op.x.Pow(op.n - 1).Scale(op.n)
	return []*tensor.Tensor{outputGrad.Mul(local)}
}
