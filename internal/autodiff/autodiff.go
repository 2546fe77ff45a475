// Package autodiff implements reverse-mode automatic differentiation over
// an explicit computation graph.
//
// Every operation takes *Node operands and returns a new *Node recording
// the operation that produced it and direct references to its inputs.
// There is no ambient tape or global graph: the DAG is exactly the Node
// references, it is rebuilt on every forward pass, and it is discarded
// after Backward. Graph construction cannot introduce cycles because a
// node only ever references nodes that already exist.
//
// Usage:
//
//	x := autodiff.Variable(xTensor)
//	y := autodiff.Mul(x, x) // y = x²
//	err := autodiff.Backward(autodiff.Mean(y))
//	fmt.Println(x.Grad()) // dy/dx = 2x
package autodiff

import (
	"github.com/axon-ml/axon/internal/tensor"
)

// Operation computes input gradients for a node during the backward pass.
// Each differentiable operation stores whatever forward-pass context its
// local derivative needs (input values, cached outputs) and returns one
// gradient per input, in input order. A nil entry means no gradient flows
// to that input.
type Operation interface {
	Backward(outputGrad *tensor.Tensor) []*tensor.Tensor
}

// Node wraps a forward value together with the operation that produced it
// and references to its input nodes. Leaves (Variables and Constants)
// have a nil op and no inputs.
type Node struct {
	value        *tensor.Tensor
	op           Operation
	inputs       []*Node
	grad         *tensor.Tensor
	requiresGrad bool
}

// Variable creates a leaf node that accumulates gradients.
// Trainable parameters are Variables; their gradient accumulator
// persists across backward passes until explicitly zeroed.
func Variable(t *tensor.Tensor) *Node {
	return &Node{value: t, grad: tensor.Zeros(t.Shape()), requiresGrad: true}
}

// Constant creates a leaf node that does not accumulate gradients.
// Batch inputs are Constants: they terminate the backward recursion.
func Constant(t *tensor.Tensor) *Node {
	return &Node{value: t}
}

// newNode creates an interior node. It requires a gradient iff any of its
// inputs does, so backward skips subgraphs made only of Constants.
func newNode(value *tensor.Tensor, op Operation, inputs ...*Node) *Node {
	n := &Node{value: value, op: op, inputs: inputs}
	for _, in := range inputs {
		if in.requiresGrad {
			n.requiresGrad = true
			break
		}
	}
	return n
}

// Value returns the node's forward value.
func (n *Node) Value() *tensor.Tensor {
	return n.value
}

// Shape returns the shape of the node's forward value.
func (n *Node) Shape() tensor.Shape {
	return n.value.Shape()
}

// Grad returns the node's gradient accumulator, or nil if no gradient has
// flowed to it.
func (n *Node) Grad() *tensor.Tensor {
	return n.grad
}

// RequiresGrad reports whether backward will deliver a gradient here.
func (n *Node) RequiresGrad() bool {
	return n.requiresGrad
}

// ZeroGrad resets the gradient accumulator to zero in place, allocating
// it first if necessary. Calling it repeatedly is a no-op after the first
// call: the accumulator stays allocated and zero.
func (n *Node) ZeroGrad() {
	if n.grad == nil {
		n.grad = tensor.Zeros(n.value.Shape())
		return
	}
	n.grad.Zero()
}

// accumulate adds g into the node's gradient accumulator. Nodes with
// multiple consumers receive one contribution per consumer; they sum.
func (n *Node) accumulate(g *tensor.Tensor) {
	if n.grad == nil {
		n.grad = tensor.Zeros(n.value.Shape())
	}
	n.grad.AddInPlace(g)
}
