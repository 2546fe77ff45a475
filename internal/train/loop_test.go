package train_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axon-ml/axon/internal/autodiff"
	"github.com/axon-ml/axon/internal/data"
	"github.com/axon-ml/axon/internal/nn"
	"github.com/axon-ml/axon/internal/optim"
	"github.com/axon-ml/axon/internal/tensor"
	"github.com/axon-ml/axon/internal/train"
)

func TestNewLoopValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	model, err := nn.NewMLP([]int{2, 2}, rng)
	require.NoError(t, err)
	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
	src, err := data.NewSliceSource(tensor.Zeros(tensor.Shape{2, 2}), []int{0, 1}, 1)
	require.NoError(t, err)

	_, err = train.NewLoop(nil, sgd, src, nil, train.Config{Epochs: 1})
	require.Error(t, err)

	_, err = train.NewLoop(model, nil, src, nil, train.Config{Epochs: 1})
	require.Error(t, err)

	_, err = train.NewLoop(model, sgd, nil, nil, train.Config{Epochs: 1})
	require.Error(t, err)

	_, err = train.NewLoop(model, sgd, src, nil, train.Config{Epochs: 0})
	require.Error(t, err)
}

func TestLoopTrainsSeparableDataset(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	// 20 examples, [4,3,2] network, batch 5, 50 epochs.
	inputs, labels, err := data.Blobs(10, 4, 2, 0.3, rng)
	require.NoError(t, err)
	src, err := data.NewSliceSource(inputs, labels, 5)
	require.NoError(t, err)
	src.Shuffle(rng)

	model, err := nn.NewMLP([]int{4, 3, 2}, rng)
	require.NoError(t, err)
	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})

	var losses []float64
	sink := train.MetricFunc(func(epoch int, meanLoss float64) {
		losses = append(losses, meanLoss)
	})

	loop, err := train.NewLoop(model, sgd, src, sink, train.Config{Epochs: 50})
	require.NoError(t, err)
	require.NoError(t, loop.Run(context.Background()))

	require.Len(t, losses, 50)
	assert.Less(t, losses[len(losses)-1], losses[0], "mean loss must fall over training")

	// Training-set accuracy >= 0.9.
	out := model.Forward(autodiff.Constant(inputs)).Value()
	correct := 0
	for i, label := range labels {
		pred := 0
		best := math.Inf(-1)
		for c := 0; c < 2; c++ {
			if v := out.At(i, c); v > best {
				best, pred = v, c
			}
		}
		if pred == label {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(labels))
	assert.GreaterOrEqual(t, accuracy, 0.9, "accuracy %.2f", accuracy)
}

func TestLoopAbortsOnBadLabelWithoutMutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	model, err := nn.NewMLP([]int{3, 2}, rng)
	require.NoError(t, err)

	inputs := tensor.Ones(tensor.Shape{4, 3})
	src, err := data.NewSliceSource(inputs, []int{0, 1, 2, 0}, 4) // label 2 >= numClasses
	require.NoError(t, err)

	var before []*tensor.Tensor
	for _, p := range model.Parameters() {
		before = append(before, p.Tensor().Clone())
	}

	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.5})
	loop, err := train.NewLoop(model, sgd, src, nil, train.Config{Epochs: 1})
	require.NoError(t, err)

	err = loop.Run(context.Background())
	require.ErrorIs(t, err, nn.ErrLabelOutOfRange)

	for i, p := range model.Parameters() {
		assert.True(t, p.Tensor().AllClose(before[i], 0), "parameter %d mutated", i)
	}
}

func TestLoopEmptySourceFails(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	model, err := nn.NewMLP([]int{2, 2}, rng)
	require.NoError(t, err)
	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})

	loop, err := train.NewLoop(model, sgd, emptySource{}, nil, train.Config{Epochs: 1})
	require.NoError(t, err)
	require.Error(t, loop.Run(context.Background()))
}

func TestLoopHonorsContextCancellation(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	model, err := nn.NewMLP([]int{2, 2}, rng)
	require.NoError(t, err)
	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})

	src, err := data.NewSliceSource(tensor.Zeros(tensor.Shape{2, 2}), []int{0, 1}, 1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loop, err := train.NewLoop(model, sgd, src, nil, train.Config{Epochs: 1})
	require.NoError(t, err)
	require.ErrorIs(t, loop.Run(ctx), context.Canceled)
}

type emptySource struct{}

func (emptySource) Reset()                    {}
func (emptySource) Next() (train.Batch, bool) { return train.Batch{}, false }
