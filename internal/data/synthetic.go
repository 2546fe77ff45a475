package data

import (
	"fmt"
	"math/rand"

	"github.com/axon-ml/axon/internal/tensor"
)

// Blobs generates a linearly separable classification dataset: one
// Gaussian cluster per class, centered on a distinct feature axis.
// Returns inputs [classes*perClass, features] and a label per row.
//
// Requires classes <= features so each class gets its own axis; noise
// well below the center distance keeps the classes separable.
func Blobs(perClass, features, classes int, noise float64, rng *rand.Rand) (*tensor.Tensor, []int, error) {
	if perClass <= 0 || features <= 0 || classes <= 0 {
		return nil, nil, fmt.Errorf("data: Blobs dimensions must be > 0, got perClass=%d features=%d classes=%d", perClass, features, classes)
	}
	if classes > features {
		return nil, nil, fmt.Errorf("data: Blobs needs classes <= features, got %d > %d", classes, features)
	}

	const centerDistance = 3.0

	n := classes * perClass
	inputs := tensor.Zeros(tensor.Shape{n, features})
	labels := make([]int, n)

	dst := inputs.Data()
	for i := 0; i < n; i++ {
		class := i % classes
		labels[i] = class
		row := dst[i*features : (i+1)*features]
		for j := range row {
			row[j] = rng.NormFloat64() * noise
		}
		row[class] += centerDistance
	}
	return inputs, labels, nil
}
