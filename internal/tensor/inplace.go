package tensor

import "gonum.org/v1/gonum/floats"

// In-place variants. These are the only operations that mutate an
// existing tensor; they exist for gradient accumulation and optimizer
// updates, where allocating a fresh buffer per step would be waste.

// AddInPlace adds other into the receiver element-wise.
// Shapes must match exactly; no broadcasting.
func (t *Tensor) AddInPlace(other *Tensor) {
	if !t.shape.Equal(other.shape) {
		shapePanic("AddInPlace", t.shape, other.shape)
	}
	floats.Add(t.data, other.data)
}

// AddScaledInPlace adds alpha*other into the receiver element-wise.
// Shapes must match exactly; no broadcasting.
func (t *Tensor) AddScaledInPlace(alpha float64, other *Tensor) {
	if !t.shape.Equal(other.shape) {
		shapePanic("AddScaledInPlace", t.shape, other.shape)
	}
	floats.AddScaled(t.data, alpha, other.data)
}

// ScaleInPlace multiplies every element of the receiver by s.
func (t *Tensor) ScaleInPlace(s float64) {
	floats.Scale(s, t.data)
}

// Zero resets every element of the receiver to zero.
func (t *Tensor) Zero() {
	for i := range t.data {
		t.data[i] = 0
	}
}

// CopyFrom copies other's values into the receiver.
// Shapes must match exactly.
func (t *Tensor) CopyFrom(other *Tensor) {
	if !t.shape.Equal(other.shape) {
		shapePanic("CopyFrom", t.shape, other.shape)
	}
	copy(t.data, other.data)
}
