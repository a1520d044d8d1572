package ops

import "fmt"

// DomainError reports a primitive evaluated outside its mathematical domain,
// e.g. the logarithm of a non-positive number or a division by zero.
//
// It is raised when the forward value is computed, never during the
// backward pass.
type DomainError struct {
	Op     Type
	X, Y   float64 // Operand data; Y is zero for unary primitives.
	Reason string
}

// Error implements error.
func (e *DomainError) Error() string {
	if Registry[e.Op].Arity == 2 {
		return fmt.Sprintf("%s(%g, %g): %s", e.Op, e.X, e.Y, e.Reason)
	}
	return fmt.Sprintf("%s(%g): %s", e.Op, e.X, e.Reason)
}

// ShapeError reports operands whose shapes cannot be combined: mismatched
// inner dimensions in a matrix product, or a matrix-valued node fed to a
// scalar primitive.
//
// Dimensions are given as [rows, cols]; a scalar is reported as [0, 0].
type ShapeError struct {
	Op          Type
	Left, Right [2]int
	Reason      string
}

// Error implements error.
func (e *ShapeError) Error() string {
	name := e.Op.String()
	if e.Op == None {
		name = "leaf"
	}
	return fmt.Sprintf("%s: %s (left %dx%d, right %dx%d)",
		name, e.Reason, e.Left[0], e.Left[1], e.Right[0], e.Right[1])
}
