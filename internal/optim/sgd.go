package optim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/axon-ml/axon/internal/nn"
	"github.com/axon-ml/axon/internal/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param -= lr * grad
//
// With momentum:
//
//	velocity = momentum*velocity + grad
//	param -= lr * velocity
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter]*tensor.Tensor
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default 0.01, must be positive).
	Momentum float64 // Momentum factor in [0, 1) (default 0).
}

// NewSGD creates an SGD optimizer over the given parameters. It panics
// on a negative learning rate or a momentum outside [0, 1); a
// misconfigured optimizer is a construction bug, same as a shape
// mismatch.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.LR < 0 {
		panic(fmt.Sprintf("optim: learning rate must be positive, got %g", config.LR))
	}
	if config.Momentum < 0 || config.Momentum >= 1 {
		panic(fmt.Sprintf("optim: momentum must be in [0, 1), got %g", config.Momentum))
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]*tensor.Tensor),
	}
}

// Step applies one descent update to every parameter in place.
func (s *SGD) Step() {
	for _, p := range s.params {
		grad := p.Grad()
		if grad == nil {
			continue
		}
		if s.momentum == 0 {
			p.Tensor().AddScaledInPlace(-s.lr, grad)
			continue
		}

		v, ok := s.velocities[p]
		if !ok {
			v = tensor.Zeros(p.Tensor().Shape())
			s.velocities[p] = v
		}
		// velocity = momentum*velocity + grad
		floats.Scale(s.momentum, v.Data())
		v.AddInPlace(grad)
		p.Tensor().AddScaledInPlace(-s.lr, v)
	}
}

// ZeroGrad resets every parameter's gradient accumulator.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate, for schedules driven by the caller.
// The same positivity contract as NewSGD applies.
func (s *SGD) SetLR(lr float64) {
	if lr <= 0 {
		panic(fmt.Sprintf("optim: learning rate must be positive, got %g", lr))
	}
	s.lr = lr
}
