package tensor

import "fmt"

// ShapeError reports an operation applied to tensors with incompatible
// dimensions. Shape mismatches indicate a model-construction bug rather
// than a runtime condition, so operations panic with a *ShapeError
// instead of returning it.
type ShapeError struct {
	Op string // Operation that failed (e.g. "Add", "MatMul").
	A  Shape  // Left operand shape.
	B  Shape  // Right operand shape (nil for unary ops).
}

func (e *ShapeError) Error() string {
	if e.B == nil {
		return fmt.Sprintf("tensor: %s: incompatible shape %v", e.Op, e.A)
	}
	return fmt.Sprintf("tensor: %s: incompatible shapes %v and %v", e.Op, e.A, e.B)
}

// shapePanic raises a *ShapeError; b is nil for unary operations and
// stays nil so Error prints a single shape.
func shapePanic(op string, a, b Shape) {
	e := &ShapeError{Op: op, A: a.Clone()}
	if b != nil {
		e.B = b.Clone()
	}
	panic(e)
}
