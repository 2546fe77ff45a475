// Copyright 2026 The Axon ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff

import (
	"github.com/axon-ml/axon/internal/autodiff"
	"github.com/axon-ml/axon/internal/tensor"
)

// Node is a value in the operation graph. Nodes hold their forward
// result and, after Backward, the gradient of the loss with respect to
// that result.
type Node = autodiff.Node

// Variable wraps a tensor as a trainable graph leaf. Its gradient
// accumulates across backward passes until ZeroGrad is called.
func Variable(t *tensor.Tensor) *Node {
	return autodiff.Variable(t)
}

// Constant wraps a tensor as a non-trainable graph leaf, used for
// inputs and labels.
func Constant(t *tensor.Tensor) *Node {
	return autodiff.Constant(t)
}

// Backward computes gradients of a 0-D loss node with respect to every
// trainable leaf that contributed to it.
func Backward(loss *Node) error {
	return autodiff.Backward(loss)
}

// Graph operations.

// Add returns a + b with broadcasting.
func Add(a, b *Node) *Node { return autodiff.Add(a, b) }

// Sub returns a - b with broadcasting.
func Sub(a, b *Node) *Node { return autodiff.Sub(a, b) }

// Mul returns the element-wise product a * b with broadcasting.
func Mul(a, b *Node) *Node { return autodiff.Mul(a, b) }

// Pow raises each element of a to the power n.
func Pow(a *Node, n float64) *Node { return autodiff.Pow(a, n) }

// Exp returns e^a element-wise.
func Exp(a *Node) *Node { return autodiff.Exp(a) }

// MatMul returns the matrix product of two 2-D nodes.
func MatMul(a, b *Node) *Node { return autodiff.MatMul(a, b) }

// Transpose returns the transpose of a 2-D node.
func Transpose(a *Node) *Node { return autodiff.Transpose(a) }

// Sum reduces a node to a 0-D scalar by summation.
func Sum(a *Node) *Node { return autodiff.Sum(a) }

// Mean reduces a node to its 0-D scalar mean.
func Mean(a *Node) *Node { return autodiff.Mean(a) }

// ReLU applies max(0, x) element-wise.
func ReLU(a *Node) *Node { return autodiff.ReLU(a) }

// LogSoftmax normalizes each row of a 2-D node into log-probabilities.
func LogSoftmax(a *Node) *Node { return autodiff.LogSoftmax(a) }

// NLL computes the mean negative log-likelihood of the labeled entries
// of a 2-D log-probability node.
func NLL(logProbs *Node, labels []int) (*Node, error) {
	return autodiff.NLL(logProbs, labels)
}
