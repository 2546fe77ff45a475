// Package data provides in-memory batch sources and synthetic datasets
// for tests and demos. Real data loading lives with the caller; the
// training loop only sees the BatchSource contract.
package data

import (
	"fmt"
	"math/rand"

	"github.com/axon-ml/axon/internal/tensor"
	"github.com/axon-ml/axon/internal/train"
)

// SliceSource is a train.BatchSource over a fixed feature matrix and
// label slice, cut into fixed-size batches. With a rand source attached
// it reshuffles the sample order on every Reset, i.e. once per epoch.
type SliceSource struct {
	inputs    *tensor.Tensor // [numSamples, featureDim]
	labels    []int
	batchSize int
	rng       *rand.Rand
	perm      []int
	cursor    int
}

// NewSliceSource creates a source over inputs [numSamples, featureDim]
// and one label per sample.
func NewSliceSource(inputs *tensor.Tensor, labels []int, batchSize int) (*SliceSource, error) {
	shape := inputs.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("data: inputs must be 2D [samples, features], got shape %v", shape)
	}
	if len(labels) != shape[0] {
		return nil, fmt.Errorf("data: got %d labels for %d samples", len(labels), shape[0])
	}
	if batchSize <= 0 {
		return nil, fmt.Errorf("data: batch size must be > 0, got %d", batchSize)
	}

	perm := make([]int, shape[0])
	for i := range perm {
		perm[i] = i
	}
	return &SliceSource{
		inputs:    inputs,
		labels:    labels,
		batchSize: batchSize,
		perm:      perm,
	}, nil
}

// Shuffle attaches a rand source; sample order is reshuffled on every
// Reset from then on.
func (s *SliceSource) Shuffle(rng *rand.Rand) *SliceSource {
	s.rng = rng
	return s
}

// Reset rewinds the source for the next epoch.
func (s *SliceSource) Reset() {
	s.cursor = 0
	if s.rng != nil {
		s.rng.Shuffle(len(s.perm), func(i, j int) {
			s.perm[i], s.perm[j] = s.perm[j], s.perm[i]
		})
	}
}

// Next returns the next batch, or false when the epoch is exhausted.
// The final batch may be smaller than the configured batch size.
func (s *SliceSource) Next() (train.Batch, bool) {
	total := len(s.labels)
	if s.cursor >= total {
		return train.Batch{}, false
	}

	end := min(s.cursor+s.batchSize, total)
	rows := end - s.cursor
	features := s.inputs.Shape()[1]

	batchInputs := tensor.Zeros(tensor.Shape{rows, features})
	batchLabels := make([]int, rows)
	src := s.inputs.Data()
	dst := batchInputs.Data()
	for r := 0; r < rows; r++ {
		sample := s.perm[s.cursor+r]
		copy(dst[r*features:(r+1)*features], src[sample*features:(sample+1)*features])
		batchLabels[r] = s.labels[sample]
	}

	s.cursor = end
	return train.Batch{Inputs: batchInputs, Labels: batchLabels}, true
}

// NumSamples returns the total number of samples in the source.
func (s *SliceSource) NumSamples() int {
	return len(s.labels)
}
