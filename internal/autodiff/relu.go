package autodiff

import "github.com/axon-ml/axon/internal/tensor"

// reluOp: output = max(0, x).
//
// The gradient passes through where the input was strictly positive and
// is zero elsewhere (including at exactly zero).
type reluOp struct {
	x *tensor.Tensor
}

// ReLU returns the element-wise rectified linear unit max(0, x).
func ReLU(x *Node) *Node {
	in := x.Value()
	out := tensor.Zeros(in.Shape())
	inData, outData := in.Data(), out.Data()
	for i, v := range inData {
		if v > 0 {
			outData[i] = v
		}
	}
	return newNode(out, &reluOp{x: in}, x)
}

func (op *reluOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	grad := tensor.Zeros(op.x.Shape())
	xData, gradData, upData := op.x.Data(), grad.Data(), outputGrad.Data()
	for i, v := range xData {
		if v > 0 {
			gradData[i] = upData[i]
		}
	}
	return []*tensor.Tensor{grad}
}
