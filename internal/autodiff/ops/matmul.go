package ops

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// MatMulForward computes a @ b, failing with a *ShapeError when the inner
// dimensions differ.
func MatMulForward(a, b mat.Matrix) (*mat.Dense, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return nil, errors.WithStack(&ShapeError{
			Op:     MatMul,
			Left:   [2]int{ar, ac},
			Right:  [2]int{br, bc},
			Reason: "inner dimensions differ",
		})
	}
	out := mat.NewDense(ar, bc, nil)
	out.Mul(a, b)
	return out, nil
}

// MatMulBackward returns the gradients of out = a @ b with respect to a and b
// for the upstream gradient g:
//   - grad_a = g @ bᵀ
//   - grad_b = aᵀ @ g
func MatMulBackward(a, b, g mat.Matrix) (gradA, gradB *mat.Dense) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	gradA = mat.NewDense(ar, ac, nil)
	gradA.Mul(g, b.T())
	gradB = mat.NewDense(br, bc, nil)
	gradB.Mul(a.T(), g)
	return gradA, gradB
}
