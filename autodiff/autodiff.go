// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Expressions built from Values record a computation graph; Backward
// propagates gradients from an output back to every value it depends on.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    a := autodiff.NewLabeled(2, "a")
//	    b := autodiff.NewLabeled(-3, "b")
//	    loss := a.Mul(b).Add(autodiff.Const(10)).SetLabel("loss")
//
//	    if err := autodiff.Backward(loss); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(a.Grad(), b.Grad()) // -3 2
//	}
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/autodiff/ops"
	"gonum.org/v1/gonum/mat"
)

// Value is a node of the computation graph.
type Value = autodiff.Value

// Operand is a *Value or a Const.
type Operand = autodiff.Operand

// Const is a plain scalar operand.
type Const = autodiff.Const

// Number is the element constraint of FromSlice.
type Number = autodiff.Number

// OpType tags the primitive that produced a Value.
type OpType = ops.Type

// Operation types, for comparing against Value.Op and DomainError.Op.
const (
	OpNone    OpType = ops.None
	OpAdd     OpType = ops.Add
	OpSub     OpType = ops.Sub
	OpMul     OpType = ops.Mul
	OpDiv     OpType = ops.Div
	OpPow     OpType = ops.Pow
	OpNeg     OpType = ops.Neg
	OpAbs     OpType = ops.Abs
	OpMatMul  OpType = ops.MatMul
	OpSigmoid OpType = ops.Sigmoid
	OpReLU    OpType = ops.ReLU
	OpSin     OpType = ops.Sin
	OpCos     OpType = ops.Cos
	OpTan     OpType = ops.Tan
	OpCotan   OpType = ops.Cotan
	OpSinh    OpType = ops.Sinh
	OpCosh    OpType = ops.Cosh
	OpTanh    OpType = ops.Tanh
	OpCoth    OpType = ops.Coth
	OpSech    OpType = ops.Sech
	OpCsch    OpType = ops.Csch
	OpAsin    OpType = ops.Asin
	OpAcos    OpType = ops.Acos
	OpAtan    OpType = ops.Atan
	OpAcotan  OpType = ops.Acotan
	OpAsec    OpType = ops.Asec
	OpAcsc    OpType = ops.Acsc
	OpAsinh   OpType = ops.Asinh
	OpAcosh   OpType = ops.Acosh
	OpAtanh   OpType = ops.Atanh
	OpAcoth   OpType = ops.Acoth
	OpExp     OpType = ops.Exp
	OpLog     OpType = ops.Log
	OpLog2    OpType = ops.Log2
	OpLog10   OpType = ops.Log10
	OpLogN    OpType = ops.LogN
	OpSqrt    OpType = ops.Sqrt
	OpCbrt    OpType = ops.Cbrt
	OpRad     OpType = ops.Rad
	OpDeg     OpType = ops.Deg
)

// Graph is a read-only snapshot of a computation graph.
type Graph = autodiff.Graph

// NodeInfo is the snapshot of a single node.
type NodeInfo = autodiff.NodeInfo

// Edge links an operand to the node computed from it.
type Edge = autodiff.Edge

// DomainError reports a primitive evaluated outside its domain.
type DomainError = ops.DomainError

// ShapeError reports incompatible matrix shapes.
type ShapeError = ops.ShapeError

// CycleError reports a cycle found while traversing a graph.
type CycleError = autodiff.CycleError

// New creates a leaf holding data.
func New(data float64) *Value {
	return autodiff.New(data)
}

// NewLabeled creates a labeled leaf holding data.
func NewLabeled(data float64, label string) *Value {
	return autodiff.NewLabeled(data, label)
}

// NewMatrix creates a matrix-valued leaf holding a copy of m.
func NewMatrix(m mat.Matrix) *Value {
	return autodiff.NewMatrix(m)
}

// FromSlice creates a rows×cols matrix-valued leaf from row-major data.
func FromSlice[T Number](rows, cols int, data []T) *Value {
	return autodiff.FromSlice(rows, cols, data)
}

// Backward computes the gradient of root with respect to every node it
// depends on. Gradients accumulate across calls; see ZeroGrad.
func Backward(root *Value) error {
	return autodiff.Backward(root)
}

// ZeroGrad resets the gradient of every node reachable from root.
func ZeroGrad(root *Value) error {
	return autodiff.ZeroGrad(root)
}

// TopologicalOrder returns the nodes reachable from root, operands first.
func TopologicalOrder(root *Value) ([]*Value, error) {
	return autodiff.TopologicalOrder(root)
}

// Trace returns a read-only snapshot of the graph reachable from root.
func Trace(root *Value) (*Graph, error) {
	return autodiff.Trace(root)
}

// Try runs fn and returns any domain or shape error raised while building
// the graph.
func Try(fn func() *Value) (*Value, error) {
	return autodiff.Try(fn)
}
