package nn

import (
	"github.com/axon-ml/axon/internal/autodiff"
)

// Sequential chains stages so each stage's output feeds the next.
type Sequential struct {
	modules []Module
}

// NewSequential creates a Sequential container from the given stages.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Forward applies all stages left to right.
func (s *Sequential) Forward(input *autodiff.Node) *autodiff.Node {
	output := input
	for _, m := range s.modules {
		output = m.Forward(output)
	}
	return output
}

// Parameters concatenates the parameters of all stages, in stage order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, m := range s.modules {
		params = append(params, m.Parameters()...)
	}
	return params
}

// Add appends a stage to the sequence.
func (s *Sequential) Add(m Module) {
	s.modules = append(s.modules, m)
}

// Len returns the number of stages.
func (s *Sequential) Len() int {
	return len(s.modules)
}
