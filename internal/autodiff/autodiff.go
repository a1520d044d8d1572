// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Every arithmetic or elementary-function call on a Value returns a new Value
// that remembers its operands and the primitive that produced it, so
// evaluating an expression builds a directed acyclic graph. Backward sorts that
// graph topologically and replays it in reverse, applying each node's local
// derivative rule from ops.Registry exactly once.
//
// Architecture:
//   - Value: one node (scalar, or a matrix for MatMul only)
//   - Operand / Const: node-or-constant right-hand sides for arithmetic
//   - ops.Registry: forward formula, domain and local derivative per primitive
//   - Backward: iterative topological sort + reverse replay
//
// Usage:
//
//	x := autodiff.NewLabeled(3, "x")
//	y := x.Mul(x).Add(x)     // y = x² + x
//	if err := y.Backward(); err != nil {
//	    return err
//	}
//	fmt.Println(x.Grad())    // dy/dx = 2x + 1 = 7
//
// Primitives evaluated outside their domain panic with an error whose cause is
// *ops.DomainError or *ops.ShapeError, before any node is created. Use Try to
// turn such panics into returned errors.
//
// Values are not safe for concurrent use: gradients are accumulated without
// synchronization. Independent graphs may be built and differentiated in
// separate goroutines.
package autodiff

import (
	"fmt"
	"sync/atomic"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// nextID hands out node identities. It is atomic so that separate goroutines
// can build independent graphs.
var nextID atomic.Uint64

// Value is a node of the computation graph.
//
// A Value is immutable after construction except for its gradient (written by
// Backward and ZeroGrad) and its cosmetic label.
type Value struct {
	id uint64

	data       float64
	grad       float64
	matrix     *mat.Dense // non-nil only for matrix-valued nodes
	gradMatrix *mat.Dense

	inputs []*Value // operands in call order; may repeat a node (x.Add(x))
	op     ops.Type // ops.None for leaves
	param  float64  // logarithm base for ops.LogN
	label  string
}

// New creates a leaf holding data.
func New(data float64) *Value {
	return &Value{id: nextID.Add(1), data: data}
}

// NewLabeled creates a leaf holding data with a human-readable label.
func NewLabeled(data float64, label string) *Value {
	v := New(data)
	v.label = label
	return v
}

// newNode creates the output of primitive op. Operands must already exist,
// which keeps the graph acyclic.
func newNode(op ops.Type, param, data float64, inputs ...*Value) *Value {
	return &Value{
		id:     nextID.Add(1),
		data:   data,
		inputs: inputs,
		op:     op,
		param:  param,
	}
}

// SetLabel sets the node's label and returns the node, for chaining.
// Labels are cosmetic and take no part in differentiation.
func (v *Value) SetLabel(label string) *Value {
	v.label = label
	return v
}

// ID returns the node's unique identity.
func (v *Value) ID() uint64 { return v.id }

// Data returns the forward value of a scalar node (0 for matrix nodes).
func (v *Value) Data() float64 { return v.data }

// Grad returns the gradient accumulated into a scalar node.
func (v *Value) Grad() float64 { return v.grad }

// IsMatrix reports whether the node holds a matrix.
func (v *Value) IsMatrix() bool { return v.matrix != nil }

// Matrix returns a copy of the node's matrix value, or nil for scalars.
func (v *Value) Matrix() *mat.Dense {
	if v.matrix == nil {
		return nil
	}
	return mat.DenseCopyOf(v.matrix)
}

// GradMatrix returns a copy of the gradient of a matrix node, or nil for
// scalars.
func (v *Value) GradMatrix() *mat.Dense {
	if v.gradMatrix == nil {
		return nil
	}
	return mat.DenseCopyOf(v.gradMatrix)
}

// Op returns the primitive that produced the node, ops.None for leaves.
func (v *Value) Op() ops.Type { return v.op }

// OpLabel returns the operator tag used on diagrams: the Op's tag, except
// that base-n logarithms render their base ("log_3").
func (v *Value) OpLabel() string {
	if v.op == ops.LogN {
		return "log_" + humanize.Ftoa(v.param)
	}
	return v.op.String()
}

// Label returns the node's label.
func (v *Value) Label() string { return v.label }

// IsLeaf reports whether the node has no operands.
func (v *Value) IsLeaf() bool { return len(v.inputs) == 0 }

// Operands returns the distinct nodes this node was computed from.
// The returned slice is a copy.
func (v *Value) Operands() []*Value {
	unique := v.uniqueInputs()
	operands := make([]*Value, len(unique))
	copy(operands, unique)
	return operands
}

// uniqueInputs returns inputs without repetition, without allocating.
func (v *Value) uniqueInputs() []*Value {
	if len(v.inputs) == 2 && v.inputs[0] == v.inputs[1] {
		return v.inputs[:1]
	}
	return v.inputs
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	if v.matrix != nil {
		r, c := v.matrix.Dims()
		return fmt.Sprintf("Value(matrix=%dx%d, label=%s)", r, c, v.label)
	}
	return fmt.Sprintf("Value(data=%s, grad=%s, label=%s)",
		humanize.Ftoa(v.data), humanize.Ftoa(v.grad), v.label)
}

// name identifies the node in logs and errors.
func (v *Value) name() string {
	if v.label != "" {
		return fmt.Sprintf("#%d(%s)", v.id, v.label)
	}
	return fmt.Sprintf("#%d", v.id)
}

// dims returns [rows, cols], or [0, 0] for scalars.
func (v *Value) dims() [2]int {
	if v.matrix == nil {
		return [2]int{}
	}
	r, c := v.matrix.Dims()
	return [2]int{r, c}
}

// scalarOnly panics with a *ops.ShapeError if any operand is matrix-valued.
func scalarOnly(op ops.Type, operands ...*Value) {
	for _, o := range operands {
		if o.IsMatrix() {
			right := [2]int{}
			if len(operands) == 2 {
				right = operands[1].dims()
			}
			panic(errors.WithStack(&ops.ShapeError{
				Op:     op,
				Left:   operands[0].dims(),
				Right:  right,
				Reason: "scalar primitive applied to a matrix-valued operand",
			}))
		}
	}
}
