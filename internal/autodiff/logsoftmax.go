package autodiff

import (
	"fmt"
	"math"

	"github.com/axon-ml/axon/internal/parallel"
	"github.com/axon-ml/axon/internal/tensor"
)

var rowKernelCfg = parallel.DefaultConfig()

// logSoftmaxOp: output[b] = x[b] - logsumexp(x[b]) along the class
// dimension of each row.
//
// Forward subtracts the per-row maximum before exponentiating, so the
// exponentials never overflow:
//
//	y = x - max(x) - log(Σ exp(x - max(x)))
//
// Backward, per row:
//
//	∂L/∂x_j = g_j - softmax(x)_j * Σ_i g_i
//
// where softmax(x) = exp(y) from the cached forward output.
type logSoftmaxOp struct {
	out *tensor.Tensor
}

// LogSoftmax applies a numerically stable log-softmax along the last
// dimension of a 2-D node [batch, classes]. Each output row
// exponentiates and sums to 1.
func LogSoftmax(x *Node) *Node {
	in := x.Value()
	shape := in.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("autodiff: LogSoftmax requires 2D input [batch, classes], got shape %v", shape))
	}
	rows, cols := shape[0], shape[1]

	out := tensor.Zeros(shape)
	inData, outData := in.Data(), out.Data()
	parallel.ForRows(rows, cols, func(r int) {
		row := inData[r*cols : (r+1)*cols]
		dst := outData[r*cols : (r+1)*cols]

		rowMax := row[0]
		for _, v := range row[1:] {
			if v > rowMax {
				rowMax = v
			}
		}

		sumExp := 0.0
		for _, v := range row {
			sumExp += math.Exp(v - rowMax)
		}
		logSumExp := rowMax + math.Log(sumExp)

		for i, v := range row {
			dst[i] = v - logSumExp
		}
	}, rowKernelCfg)
	return newNode(out, &logSoftmaxOp{out: out}, x)
}

func (op *logSoftmaxOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	shape := op.out.Shape()
	rows, cols := shape[0], shape[1]

	grad := tensor.Zeros(shape)
	outData, gradData, upData := op.out.Data(), grad.Data(), outputGrad.Data()
	parallel.ForRows(rows, cols, func(r int) {
		up := upData[r*cols : (r+1)*cols]
		y := outData[r*cols : (r+1)*cols]
		dst := gradData[r*cols : (r+1)*cols]

		rowSum := 0.0
		for _, g := range up {
			rowSum += g
		}
		for i := range dst {
			dst[i] = up[i] - math.Exp(y[i])*rowSum
		}
	}, rowKernelCfg)
	return []*tensor.Tensor{grad}
}
