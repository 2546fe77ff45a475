package data

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axon-ml/axon/internal/tensor"
)

func TestSliceSourceBatching(t *testing.T) {
	inputs, err := tensor.FromSlice([]float64{
		1, 1,
		2, 2,
		3, 3,
		4, 4,
		5, 5,
	}, tensor.Shape{5, 2})
	require.NoError(t, err)

	src, err := NewSliceSource(inputs, []int{0, 1, 0, 1, 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, src.NumSamples())

	src.Reset()
	var sizes []int
	var labels []int
	for {
		b, ok := src.Next()
		if !ok {
			break
		}
		sizes = append(sizes, b.Inputs.Shape()[0])
		labels = append(labels, b.Labels...)
	}
	// Final partial batch is included.
	assert.Equal(t, []int{2, 2, 1}, sizes)
	assert.Equal(t, []int{0, 1, 0, 1, 0}, labels)
}

func TestSliceSourceRestartable(t *testing.T) {
	inputs := tensor.Ones(tensor.Shape{4, 3})
	src, err := NewSliceSource(inputs, []int{0, 1, 2, 3}, 4)
	require.NoError(t, err)

	for epoch := 0; epoch < 3; epoch++ {
		src.Reset()
		b, ok := src.Next()
		require.True(t, ok)
		assert.Equal(t, []int{0, 1, 2, 3}, b.Labels)

		_, ok = src.Next()
		assert.False(t, ok)
	}
}

func TestSliceSourceShuffleCoversAllSamples(t *testing.T) {
	inputs := tensor.Zeros(tensor.Shape{6, 1})
	for i := 0; i < 6; i++ {
		inputs.Set(float64(i), i, 0)
	}
	src, err := NewSliceSource(inputs, []int{0, 1, 2, 3, 4, 5}, 6)
	require.NoError(t, err)
	src.Shuffle(rand.New(rand.NewSource(42)))

	src.Reset()
	b, ok := src.Next()
	require.True(t, ok)

	seen := make(map[int]bool)
	for _, l := range b.Labels {
		seen[l] = true
	}
	assert.Len(t, seen, 6)
}

func TestSliceSourceValidation(t *testing.T) {
	inputs := tensor.Zeros(tensor.Shape{4, 2})

	_, err := NewSliceSource(tensor.Zeros(tensor.Shape{4}), []int{0}, 1)
	require.Error(t, err)

	_, err = NewSliceSource(inputs, []int{0, 1}, 1)
	require.Error(t, err)

	_, err = NewSliceSource(inputs, []int{0, 1, 0, 1}, 0)
	require.Error(t, err)
}

func TestBlobsSeparable(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	inputs, labels, err := Blobs(10, 4, 2, 0.3, rng)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{20, 4}, inputs.Shape())
	require.Len(t, labels, 20)

	// The class axis must dominate every sample's feature vector.
	for i, label := range labels {
		for j := 0; j < 4; j++ {
			if j == label {
				continue
			}
			assert.Greater(t, inputs.At(i, label), inputs.At(i, j), "sample %d", i)
		}
	}
}

func TestBlobsValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	_, _, err := Blobs(0, 4, 2, 0.1, rng)
	require.Error(t, err)

	_, _, err = Blobs(5, 2, 3, 0.1, rng)
	require.Error(t, err)
}
