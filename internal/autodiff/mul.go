package autodiff

import "github.com/axon-ml/axon/internal/tensor"

// mulOp: output = a * b element-wise (broadcasting allowed).
//
// d(a*b)/da = b, d(a*b)/db = a: each input's gradient is the output
// gradient times the other operand.
type mulOp struct {
	a, b *tensor.Tensor
}

// Mul returns the element-wise product a * b.
func Mul(a, b *Node) *Node {
	out := a.Value().Mul(b.Value())
	return newNode(out, &mulOp{a: a.Value(), b: b.Value()}, a, b)
}

func (op *mulOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{
		outputGrad.Mul(op.b).SumTo(op.a.Shape()),
		outputGrad.Mul(op.a).SumTo(op.b.Shape()),
	}
}
