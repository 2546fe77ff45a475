package autodiff

import "github.com/axon-ml/axon/internal/tensor"

// addOp: output = a + b (broadcasting allowed).
//
// The gradient of addition is the identity to both inputs; SumTo folds
// gradients of broadcasted operands back onto their original shape (the
// bias in a linear layer is the canonical case).
type addOp struct {
	aShape, bShape tensor.Shape
}

// Add returns a + b.
func Add(a, b *Node) *Node {
	out := a.Value().Add(b.Value())
	return newNode(out, &addOp{aShape: a.Shape(), bShape: b.Shape()}, a, b)
}

func (op *addOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{
		outputGrad.SumTo(op.aShape),
		outputGrad.SumTo(op.bShape),
	}
}

// subOp: output = a - b (broadcasting allowed).
type subOp struct {
	aShape, bShape tensor.Shape
}

// Sub returns a - b.
func Sub(a, b *Node) *Node {
	out := a.Value().Sub(b.Value())
	return newNode(out, &subOp{aShape: a.Shape(), bShape: b.Shape()}, a, b)
}

func (op *subOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{
		outputGrad.SumTo(op.aShape),
		outputGrad.Scale(-1).SumTo(op.bShape),
	}
}
