// Package tensor implements fixed-shape float64 buffers with the
// elementwise, matrix and reduction operations the autodiff engine
// differentiates through.
//
// Operations allocate and return new tensors; the explicitly named
// in-place variants (AddInPlace, AddScaledInPlace, Zero, CopyFrom) exist
// only for gradient accumulation and optimizer updates. Constructors
// return errors for invalid shapes; operations on well-constructed
// tensors panic with *ShapeError when dimensions disagree.
package tensor

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/axon-ml/axon/internal/parallel"
)

// kernelCfg controls parallel execution of elementwise kernels.
// Disjoint index ranges keep the single-writer discipline intact.
var kernelCfg = parallel.DefaultConfig()

// Tensor is a fixed-shape buffer of float64 values in row-major layout.
type Tensor struct {
	data   []float64
	shape  Shape
	stride []int
}

// New creates a zero-filled tensor with the given shape.
func New(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Tensor{
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	t, err := New(shape)
	if err != nil {
		return nil, err
	}
	copy(t.data, data)
	return t, nil
}

// Zeros creates a zero-filled tensor. Panics on an invalid shape.
func Zeros(shape Shape) *Tensor {
	t, err := New(shape)
	if err != nil {
		panic(err)
	}
	return t
}

// Ones creates a tensor filled with ones. Panics on an invalid shape.
func Ones(shape Shape) *Tensor {
	return Full(shape, 1)
}

// Full creates a tensor filled with the given value. Panics on an invalid shape.
func Full(shape Shape, value float64) *Tensor {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Scalar creates a 0-D tensor holding a single value.
func Scalar(value float64) *Tensor {
	t := Zeros(Shape{})
	t.data[0] = value
	return t
}

// Randn creates a tensor with values drawn from N(0, 1) using rng.
func Randn(shape Shape, rng *rand.Rand) *Tensor {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = rng.NormFloat64()
	}
	return t
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Data returns the flat backing slice (zero-copy).
// Modifications to the returned slice modify the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// Item returns the value of a 0-D (scalar) tensor.
// Panics if the tensor is not a scalar.
func (t *Tensor) Item() float64 {
	if len(t.shape) != 0 {
		panic(fmt.Sprintf("tensor: Item only works for scalar tensors, got shape %v", t.shape))
	}
	return t.data[0]
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) At(indices ...int) float64 {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) Set(value float64, indices ...int) {
	t.data[t.offset(indices)] = value
}

func (t *Tensor) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("tensor: expected %d indices, got %d", len(t.shape), len(indices)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("tensor: index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.stride[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	c := Zeros(t.shape)
	copy(c.data, t.data)
	return c
}

// String returns a human-readable description of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v (%d elements)", t.shape, len(t.data))
}

// AllClose reports whether both tensors have the same shape and all
// elements agree within the absolute tolerance tol.
func (t *Tensor) AllClose(other *Tensor, tol float64) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i, v := range t.data {
		if math.Abs(v-other.data[i]) > tol {
			return false
		}
	}
	return true
}
