// Copyright 2026 The Axon ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/axon-ml/axon/internal/nn"
	"github.com/axon-ml/axon/internal/tensor"
)

// Module is the common interface for all network stages.
type Module = nn.Module

// Parameter represents a trainable tensor in a network.
type Parameter = nn.Parameter

// NewParameter creates a trainable parameter from an initialized tensor.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// Layers

// Linear is a fully connected layer: y = x @ Wᵗ + b.
type Linear = nn.Linear

// NewLinear creates a linear layer with Xavier-initialized weights.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	layer := nn.NewLinear(784, 128, rng)
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, rng)
}

// Activations

// ReLU applies max(0, x) element-wise.
type ReLU = nn.ReLU

// NewReLU creates a ReLU activation stage.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// LogSoftmax normalizes logits rows into log-probabilities.
type LogSoftmax = nn.LogSoftmax

// NewLogSoftmax creates a LogSoftmax stage.
func NewLogSoftmax() *LogSoftmax {
	return nn.NewLogSoftmax()
}

// Loss

// NLLLoss is the negative log-likelihood loss over log-probabilities.
type NLLLoss = nn.NLLLoss

// NewNLLLoss creates an NLL loss function.
func NewNLLLoss() *NLLLoss {
	return nn.NewNLLLoss()
}

// ErrLabelOutOfRange reports a class label outside [0, numClasses).
var ErrLabelOutOfRange = nn.ErrLabelOutOfRange

// Containers

// Sequential chains stages so each stage's output feeds the next.
type Sequential = nn.Sequential

// NewSequential creates a sequential model.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, rng),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10, rng),
//	    nn.NewLogSoftmax(),
//	)
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// NewMLP builds a feed-forward classifier from an ordered list of layer
// sizes, with ReLU between hidden layers and a trailing LogSoftmax.
func NewMLP(sizes []int, rng *rand.Rand) (*Sequential, error) {
	return nn.NewMLP(sizes, rng)
}

// Initialization

// Xavier initializes a tensor from the Glorot uniform distribution.
func Xavier(fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand) *tensor.Tensor {
	return nn.Xavier(fanIn, fanOut, shape, rng)
}

// Zeros creates a zero tensor (bias initialization).
func Zeros(shape tensor.Shape) *tensor.Tensor {
	return nn.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape tensor.Shape) *tensor.Tensor {
	return nn.Ones(shape)
}
