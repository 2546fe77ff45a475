// Package train orchestrates epochs of forward, loss, backward and
// update steps over a batch source, reporting mean loss per epoch.
package train

import (
	"context"
	"errors"
	"fmt"

	"github.com/axon-ml/axon/internal/autodiff"
	"github.com/axon-ml/axon/internal/nn"
	"github.com/axon-ml/axon/internal/optim"
	"github.com/axon-ml/axon/internal/tensor"
)

// Batch pairs a [batchSize, featureDim] input buffer with one integer
// class label per row.
type Batch struct {
	Inputs *tensor.Tensor
	Labels []int
}

// BatchSource yields a finite sequence of batches, restartable across
// epochs: Reset rewinds it, Next returns the next batch until exhausted.
// The source owns data loading and shuffling; the loop only consumes.
type BatchSource interface {
	Reset()
	Next() (Batch, bool)
}

// MetricSink receives the mean loss at the end of each epoch.
type MetricSink interface {
	EpochDone(epoch int, meanLoss float64)
}

// MetricFunc adapts a function to the MetricSink interface.
type MetricFunc func(epoch int, meanLoss float64)

// EpochDone calls f(epoch, meanLoss).
func (f MetricFunc) EpochDone(epoch int, meanLoss float64) {
	f(epoch, meanLoss)
}

// Config captures the knobs of the training loop itself.
type Config struct {
	Epochs int // Number of full passes over the batch source; must be > 0.
}

// Loop runs the train cycle: per batch, zero gradients, forward through
// the model, NLL loss, backward, optimizer step.
//
// Failures are fatal by design. A shape mismatch or an out-of-range
// label indicates a broken data contract, not a transient condition, so
// the loop aborts instead of retrying or skipping. Label errors surface
// before the backward pass runs, which guarantees no parameter has been
// touched for the offending batch.
type Loop struct {
	model     nn.Module
	loss      *nn.NLLLoss
	optimizer optim.Optimizer
	source    BatchSource
	sink      MetricSink
	cfg       Config
}

// NewLoop validates the configuration and assembles a training loop.
// sink may be nil to discard metrics.
func NewLoop(model nn.Module, optimizer optim.Optimizer, source BatchSource, sink MetricSink, cfg Config) (*Loop, error) {
	if model == nil {
		return nil, errors.New("train: model must not be nil")
	}
	if optimizer == nil {
		return nil, errors.New("train: optimizer must not be nil")
	}
	if source == nil {
		return nil, errors.New("train: batch source must not be nil")
	}
	if cfg.Epochs <= 0 {
		return nil, fmt.Errorf("train: epochs must be > 0, got %d", cfg.Epochs)
	}
	if sink == nil {
		sink = MetricFunc(func(int, float64) {})
	}
	return &Loop{
		model:     model,
		loss:      nn.NewNLLLoss(),
		optimizer: optimizer,
		source:    source,
		sink:      sink,
		cfg:       cfg,
	}, nil
}

// Run executes all configured epochs. ctx is checked between steps only;
// there are no other suspension points in an epoch.
func (l *Loop) Run(ctx context.Context) error {
	for epoch := 1; epoch <= l.cfg.Epochs; epoch++ {
		l.source.Reset()

		lossSum := 0.0
		batches := 0
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			batch, ok := l.source.Next()
			if !ok {
				break
			}

			batchLoss, err := l.step(batch)
			if err != nil {
				return fmt.Errorf("train: epoch %d batch %d: %w", epoch, batches, err)
			}
			lossSum += batchLoss
			batches++
		}
		if batches == 0 {
			return errors.New("train: batch source yielded no batches")
		}

		l.sink.EpochDone(epoch, lossSum/float64(batches))
	}
	return nil
}

// step runs one train cycle on a single batch and returns its loss.
func (l *Loop) step(batch Batch) (float64, error) {
	l.optimizer.ZeroGrad()

	output := l.model.Forward(autodiff.Constant(batch.Inputs))
	loss, err := l.loss.Forward(output, batch.Labels)
	if err != nil {
		return 0, err
	}
	if err := autodiff.Backward(loss); err != nil {
		return 0, err
	}
	l.optimizer.Step()

	return loss.Value().Item(), nil
}
