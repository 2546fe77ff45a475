package tensor

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/axon-ml/axon/internal/parallel"
)

// Add returns the element-wise sum a + b with broadcasting.
func (t *Tensor) Add(other *Tensor) *Tensor {
	return t.binaryOp("Add", other, func(x, y float64) float64 { return x + y })
}

// Sub returns the element-wise difference a - b with broadcasting.
func (t *Tensor) Sub(other *Tensor) *Tensor {
	return t.binaryOp("Sub", other, func(x, y float64) float64 { return x - y })
}

// Mul returns the element-wise product a * b with broadcasting.
func (t *Tensor) Mul(other *Tensor) *Tensor {
	return t.binaryOp("Mul", other, func(x, y float64) float64 { return x * y })
}

// Div returns the element-wise quotient a / b with broadcasting.
func (t *Tensor) Div(other *Tensor) *Tensor {
	return t.binaryOp("Div", other, func(x, y float64) float64 { return x / y })
}

// binaryOp applies f element-wise. Operands must have identical shapes or
// be broadcastable under NumPy rules (scalar or row vector against a
// matrix); otherwise it panics with a *ShapeError.
func (t *Tensor) binaryOp(op string, other *Tensor, f func(x, y float64) float64) *Tensor {
	if t.shape.Equal(other.shape) {
		out := Zeros(t.shape)
		parallel.For(len(out.data), func(i int) {
			out.data[i] = f(t.data[i], other.data[i])
		}, kernelCfg)
		return out
	}

	outShape, _, err := BroadcastShapes(t.shape, other.shape)
	if err != nil {
		shapePanic(op, t.shape, other.shape)
	}

	out := Zeros(outShape)
	outStride := outShape.ComputeStrides()
	aStride := broadcastStrides(t.shape, outShape)
	bStride := broadcastStrides(other.shape, outShape)

	parallel.For(len(out.data), func(i int) {
		rem := i
		ai, bi := 0, 0
		for d := 0; d < len(outShape); d++ {
			idx := rem / outStride[d]
			rem %= outStride[d]
			ai += idx * aStride[d]
			bi += idx * bStride[d]
		}
		out.data[i] = f(t.data[ai], other.data[bi])
	}, kernelCfg)
	return out
}

// broadcastStrides maps a (broadcastable) shape onto strides in the output
// shape, with stride 0 on broadcast dimensions.
func broadcastStrides(shape, out Shape) []int {
	native := shape.ComputeStrides()
	strides := make([]int, len(out))
	offset := len(out) - len(shape)
	for i := range out {
		if i < offset {
			continue // missing leading dimension, stride 0
		}
		if shape[i-offset] == 1 && out[i] != 1 {
			continue // broadcast dimension, stride 0
		}
		strides[i] = native[i-offset]
	}
	return strides
}

// Pow returns the element-wise power x^n.
func (t *Tensor) Pow(n float64) *Tensor {
	out := Zeros(t.shape)
	if n == 2 {
		parallel.For(len(out.data), func(i int) {
			out.data[i] = t.data[i] * t.data[i]
		}, kernelCfg)
		return out
	}
	parallel.For(len(out.data), func(i int) {
		out.data[i] = math.Pow(t.data[i], n)
	}, kernelCfg)
	return out
}

// Exp returns the element-wise exponential e^x.
func (t *Tensor) Exp() *Tensor {
	out := Zeros(t.shape)
	parallel.For(len(out.data), func(i int) {
		out.data[i] = math.Exp(t.data[i])
	}, kernelCfg)
	return out
}

// Scale returns the tensor multiplied by a scalar.
func (t *Tensor) Scale(s float64) *Tensor {
	out := Zeros(t.shape)
	parallel.For(len(out.data), func(i int) {
		out.data[i] = t.data[i] * s
	}, kernelCfg)
	return out
}

// MatMul returns the matrix product a @ b.
// Both operands must be 2-D with matching inner dimensions.
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	if len(t.shape) != 2 || len(other.shape) != 2 || t.shape[1] != other.shape[0] {
		shapePanic("MatMul", t.shape, other.shape)
	}

	m, k, n := t.shape[0], t.shape[1], other.shape[1]
	out := Zeros(Shape{m, n})

	// gonum's Dense wraps the backing slices directly, so the product is
	// written straight into out without an extra copy.
	a := mat.NewDense(m, k, t.data)
	b := mat.NewDense(k, n, other.data)
	c := mat.NewDense(m, n, out.data)
	c.Mul(a, b)
	return out
}

// Transpose returns the transpose of a 2-D tensor.
func (t *Tensor) Transpose() *Tensor {
	if len(t.shape) != 2 {
		shapePanic("Transpose", t.shape, nil)
	}
	rows, cols := t.shape[0], t.shape[1]
	out := Zeros(Shape{cols, rows})
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.data[c*rows+r] = t.data[r*cols+c]
		}
	}
	return out
}

// Sum reduces the tensor to a 0-D scalar holding the sum of all elements.
func (t *Tensor) Sum() *Tensor {
	return Scalar(floats.Sum(t.data))
}

// Mean reduces the tensor to a 0-D scalar holding the mean of all elements.
func (t *Tensor) Mean() *Tensor {
	return Scalar(floats.Sum(t.data) / float64(len(t.data)))
}

// SumTo reduces the tensor to the target shape by summing over broadcast
// dimensions. It is the adjoint of broadcasting: if x of shape `target`
// broadcasts to t's shape in the forward pass, SumTo folds t's gradient
// back onto x. Panics with *ShapeError if target does not broadcast to
// the receiver's shape.
func (t *Tensor) SumTo(target Shape) *Tensor {
	if t.shape.Equal(target) {
		return t.Clone()
	}
	bcast, _, err := BroadcastShapes(target, t.shape)
	if err != nil || !bcast.Equal(t.shape) {
		shapePanic("SumTo", t.shape, target)
	}

	out := Zeros(target)
	srcStride := t.shape.ComputeStrides()
	dstStride := broadcastStrides(target, t.shape)

	for i := range t.data {
		rem := i
		di := 0
		for d := 0; d < len(t.shape); d++ {
			idx := rem / srcStride[d]
			rem %= srcStride[d]
			di += idx * dstStride[d]
		}
		out.data[di] += t.data[i]
	}
	return out
}
