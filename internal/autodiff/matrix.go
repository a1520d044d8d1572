package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff/ops"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/mat"
)

// Number is any integer or floating-point element type accepted by FromSlice.
type Number interface {
	constraints.Integer | constraints.Float
}

// NewMatrix creates a matrix-valued leaf holding a copy of m.
func NewMatrix(m mat.Matrix) *Value {
	return newMatrixLeaf(mat.DenseCopyOf(m))
}

// FromSlice creates a rows×cols matrix-valued leaf from row-major data.
// It panics with a *ops.ShapeError if the dimensions are not positive or do
// not match len(data).
func FromSlice[T Number](rows, cols int, data []T) *Value {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		panic(errors.WithStack(&ops.ShapeError{
			Op:     ops.None,
			Left:   [2]int{rows, cols},
			Right:  [2]int{len(data), 1},
			Reason: "data length does not match matrix dimensions",
		}))
	}
	values := make([]float64, len(data))
	for i, x := range data {
		values[i] = float64(x)
	}
	return newMatrixLeaf(mat.NewDense(rows, cols, values))
}

func newMatrixLeaf(m *mat.Dense) *Value {
	r, c := m.Dims()
	return &Value{
		id:         nextID.Add(1),
		matrix:     m,
		gradMatrix: mat.NewDense(r, c, nil),
	}
}

// MatMul returns the matrix product v @ o. Both operands must be
// matrix-valued with matching inner dimensions, otherwise MatMul panics with
// a *ops.ShapeError.
func (v *Value) MatMul(o *Value) *Value {
	if !v.IsMatrix() || !o.IsMatrix() {
		panic(errors.WithStack(&ops.ShapeError{
			Op:     ops.MatMul,
			Left:   v.dims(),
			Right:  o.dims(),
			Reason: "matrix product needs two matrix-valued operands",
		}))
	}
	product, err := ops.MatMulForward(v.matrix, o.matrix)
	if err != nil {
		panic(err)
	}
	out := newMatrixLeaf(product)
	out.op = ops.MatMul
	out.inputs = []*Value{v, o}
	return out
}
