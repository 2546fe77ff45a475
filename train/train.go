// Copyright 2026 The Axon ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train

import (
	"github.com/axon-ml/axon/internal/nn"
	"github.com/axon-ml/axon/internal/optim"
	"github.com/axon-ml/axon/internal/train"
)

// Batch pairs an input buffer with one integer class label per row.
type Batch = train.Batch

// BatchSource yields a finite, restartable sequence of batches.
type BatchSource = train.BatchSource

// MetricSink receives the mean loss at the end of each epoch.
type MetricSink = train.MetricSink

// MetricFunc adapts a function to the MetricSink interface.
type MetricFunc = train.MetricFunc

// Config captures the knobs of the training loop.
type Config = train.Config

// Loop runs the per-batch train cycle: zero gradients, forward, loss,
// backward, optimizer step.
type Loop = train.Loop

// NewLoop validates the configuration and assembles a training loop.
func NewLoop(model nn.Module, optimizer optim.Optimizer, source BatchSource, sink MetricSink, cfg Config) (*Loop, error) {
	return train.NewLoop(model, optimizer, source, sink, cfg)
}
