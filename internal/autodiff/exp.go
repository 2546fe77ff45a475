package autodiff

import "github.com/axon-ml/axon/internal/tensor"

// expOp: output = e^x.
//
// d(e^x)/dx = e^x, so the cached forward output is the local derivative.
type expOp struct {
	out *tensor.Tensor
}

// Exp returns the element-wise exponential e^x.
func Exp(x *Node) *Node {
	out := x.Value().Exp()
	return newNode(out, &expOp{out: out}, x)
}

func (op *expOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{outputGrad.Mul(op.out)}
}
