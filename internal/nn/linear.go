package nn

import (
	"fmt"
	"math/rand"

	"github.com/axon-ml/axon/internal/autodiff"
	"github.com/axon-ml/axon/internal/tensor"
)

// Linear implements a fully connected layer: y = x @ Wᵗ + b.
//
//   - x: [batch, inFeatures]
//   - W: [outFeatures, inFeatures], Xavier-initialized
//   - b: [outFeatures], zero-initialized
//   - y: [batch, outFeatures]
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter
	bias        *Parameter
}

// NewLinear creates a Linear layer with weights initialized from rng.
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	weight := Xavier(inFeatures, outFeatures, tensor.Shape{outFeatures, inFeatures}, rng)
	bias := Zeros(tensor.Shape{outFeatures})

	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", weight),
		bias:        NewParameter("bias", bias),
	}
}

// Forward computes y = x @ Wᵗ + b for input [batch, inFeatures].
func (l *Linear) Forward(input *autodiff.Node) *autodiff.Node {
	shape := input.Shape()
	if len(shape) != 2 || shape[1] != l.inFeatures {
		panic(fmt.Sprintf("nn: Linear.Forward expected input [batch, %d], got shape %v", l.inFeatures, shape))
	}

	out := autodiff.MatMul(input, autodiff.Transpose(l.weight.Node()))
	return autodiff.Add(out, l.bias.Node())
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter {
	return l.bias
}
