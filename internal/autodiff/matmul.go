package autodiff

import "github.com/axon-ml/axon/internal/tensor"

// matmulOp: output = a @ b.
//
// d(A@B)/dA = outputGrad @ Bᵗ, d(A@B)/dB = Aᵗ @ outputGrad.
type matmulOp struct {
	a, b *tensor.Tensor
}

// MatMul returns the matrix product a @ b.
func MatMul(a, b *Node) *Node {
	out := a.Value().MatMul(b.Value())
	return newNode(out, &matmulOp{a: a.Value(), b: b.Value()}, a, b)
}

func (op *matmulOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{
		outputGrad.MatMul(op.b.Transpose()),
		op.a.Transpose().MatMul(outputGrad),
	}
}
