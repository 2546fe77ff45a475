package optim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axon-ml/axon/internal/autodiff"
	"github.com/axon-ml/axon/internal/nn"
	"github.com/axon-ml/axon/internal/tensor"
)

// driveGradient runs a backward pass that leaves grad = 2*value on p.
func driveGradient(t *testing.T, p *nn.Parameter) {
	t.Helper()
	loss := autodiff.Sum(autodiff.Mul(p.Node(), p.Node()))
	require.NoError(t, autodiff.Backward(loss))
}

func TestSGDStepExactUpdate(t *testing.T) {
	rng := rand.New(rand.NewSource(31))

	// For arbitrary v, g, r > 0 the new value must be v - r*g.
	for trial := 0; trial < 5; trial++ {
		values := tensor.Randn(tensor.Shape{3, 2}, rng)
		p := nn.NewParameter("weight", values.Clone())
		lr := rng.Float64() + 0.001

		driveGradient(t, p)
		grad := p.Grad().Clone()

		sgd := NewSGD([]*nn.Parameter{p}, SGDConfig{LR: lr})
		sgd.Step()

		for i, v := range values.Data() {
			want := v - lr*grad.Data()[i]
			assert.InDelta(t, want, p.Tensor().Data()[i], 1e-12)
		}
	}
}

func TestSGDDefaultLR(t *testing.T) {
	sgd := NewSGD(nil, SGDConfig{})
	assert.Equal(t, 0.01, sgd.LR())

	sgd.SetLR(0.003)
	assert.Equal(t, 0.003, sgd.LR())
}

func TestSGDRejectsInvalidConfig(t *testing.T) {
	assert.Panics(t, func() {
		NewSGD(nil, SGDConfig{LR: -0.1})
	})
	assert.Panics(t, func() {
		NewSGD(nil, SGDConfig{Momentum: 1})
	})
	assert.Panics(t, func() {
		NewSGD(nil, SGDConfig{Momentum: -0.5})
	})
	assert.Panics(t, func() {
		NewSGD(nil, SGDConfig{}).SetLR(-1)
	})
}

func TestSGDZeroGradResetsAllAndIsIdempotent(t *testing.T) {
	p1 := nn.NewParameter("weight", tensor.Ones(tensor.Shape{2}))
	p2 := nn.NewParameter("bias", tensor.Ones(tensor.Shape{2}))
	sgd := NewSGD([]*nn.Parameter{p1, p2}, SGDConfig{LR: 0.1})

	driveGradient(t, p1)
	driveGradient(t, p2)

	sgd.ZeroGrad()
	sgd.ZeroGrad()
	for _, p := range []*nn.Parameter{p1, p2} {
		for _, v := range p.Grad().Data() {
			assert.Zero(t, v)
		}
	}
}

func TestSGDMomentumAccumulatesVelocity(t *testing.T) {
	p := nn.NewParameter("weight", tensor.Full(tensor.Shape{1}, 1))
	sgd := NewSGD([]*nn.Parameter{p}, SGDConfig{LR: 0.1, Momentum: 0.9})

	// First step: grad = 2*1 = 2, velocity = 2, param = 1 - 0.2 = 0.8.
	sgd.ZeroGrad()
	driveGradient(t, p)
	sgd.Step()
	assert.InDelta(t, 0.8, p.Tensor().At(0), 1e-12)

	// Second step: grad = 1.6, velocity = 0.9*2 + 1.6 = 3.4,
	// param = 0.8 - 0.34 = 0.46.
	sgd.ZeroGrad()
	driveGradient(t, p)
	sgd.Step()
	assert.InDelta(t, 0.46, p.Tensor().At(0), 1e-12)
}

func TestSGDSkipsAccumulatorlessParameters(t *testing.T) {
	// A parameter that never took part in a backward pass still has its
	// eager zero accumulator, so Step applies a zero update; the value
	// must be unchanged.
	p := nn.NewParameter("weight", tensor.Full(tensor.Shape{2}, 5))
	sgd := NewSGD([]*nn.Parameter{p}, SGDConfig{LR: 0.5})
	sgd.Step()

	assert.Equal(t, []float64{5, 5}, p.Tensor().Data())
}
