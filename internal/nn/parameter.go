package nn

import (
	"github.com/axon-ml/axon/internal/autodiff"
	"github.com/axon-ml/axon/internal/tensor"
)

// Parameter represents a trainable tensor in a network.
//
// A Parameter wraps a persistent Variable leaf: the same node is fed
// into every forward pass, so backward passes deliver gradients to the
// same accumulator. The accumulator is allocated eagerly with the
// parameter's shape and SUMS contributions across backward passes until
// ZeroGrad resets it. Calling ZeroGrad before each backward pass is part
// of the training contract; skipping it silently mixes gradients from
// prior batches.
type Parameter struct {
	name string
	node *autodiff.Node
}

// NewParameter creates a trainable parameter from an initialized tensor.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{name: name, node: autodiff.Variable(t)}
}

// Name returns the parameter name (e.g. "weight", "bias").
func (p *Parameter) Name() string {
	return p.name
}

// Node returns the persistent graph leaf for this parameter.
func (p *Parameter) Node() *autodiff.Node {
	return p.node
}

// Tensor returns the parameter's value tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.node.Value()
}

// Grad returns the gradient accumulator.
func (p *Parameter) Grad() *tensor.Tensor {
	return p.node.Grad()
}

// ZeroGrad resets the gradient accumulator to zero in place.
// It is idempotent.
func (p *Parameter) ZeroGrad() {
	p.node.ZeroGrad()
}
