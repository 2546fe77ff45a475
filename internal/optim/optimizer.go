// Package optim implements parameter-update rules for training.
//
// The training contract is explicit: call ZeroGrad before every backward
// pass. Gradient accumulators sum across backward passes by design, so
// skipping the reset silently mixes gradients from prior batches into
// the next update.
//
//	for each batch {
//	    optimizer.ZeroGrad()
//	    loss := ...forward + loss...
//	    autodiff.Backward(loss)
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for all update rules.
type Optimizer interface {
	// Step applies the update rule to every parameter in place, using
	// the gradients accumulated since the last ZeroGrad.
	Step()

	// ZeroGrad resets every parameter's gradient accumulator to zero.
	// Mandatory before each backward pass; idempotent.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64
}
