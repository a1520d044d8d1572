// Package ops defines the operator catalog for scalar automatic differentiation.
//
// Every primitive is described by a Rule, stored in Registry under its Type:
//   - Forward: closed-form value of the primitive for operand data x, y
//   - Domain: reports why (x, y) is outside the primitive's domain, if it is
//   - Local: the local partial derivatives d(out)/dx and d(out)/dy
//
// The backward engine multiplies the local derivatives by the upstream
// gradient and adds the products into the operands' gradients. Keeping the
// derivatives in one table, apart from graph construction, lets them be
// checked against finite differences on their own.
//
// Matrix multiplication is the only matrix-valued primitive and is handled
// by MatMulForward and MatMulBackward instead of a Rule.
package ops

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Type tags the primitive that produced a node.
type Type int

// Primitive types. None tags leaves and constants.
const (
	None Type = iota
	Add
	Sub
	Mul
	Div
	Pow
	Neg
	Abs
	MatMul
	Sigmoid
	ReLU
	Sin
	Cos
	Tan
	Cotan
	Sinh
	Cosh
	Tanh
	Coth
	Sech
	Csch
	Asin
	Acos
	Atan
	Acotan
	Asec
	Acsc
	Asinh
	Acosh
	Atanh
	Acoth
	Exp
	Log
	Log2
	Log10
	LogN
	Sqrt
	Cbrt
	Rad
	Deg
	numTypes
)

var typeNames = [...]string{
	None:    "",
	Add:     "+",
	Sub:     "-",
	Mul:     "*",
	Div:     "/",
	Pow:     "**",
	Neg:     "neg",
	Abs:     "abs",
	MatMul:  "@",
	Sigmoid: "sigmoid",
	ReLU:    "relu",
	Sin:     "sin",
	Cos:     "cos",
	Tan:     "tan",
	Cotan:   "cotan",
	Sinh:    "sinh",
	Cosh:    "cosh",
	Tanh:    "tanh",
	Coth:    "coth",
	Sech:    "sech",
	Csch:    "csch",
	Asin:    "asin",
	Acos:    "acos",
	Atan:    "atan",
	Acotan:  "acotan",
	Asec:    "asec",
	Acsc:    "acsc",
	Asinh:   "asinh",
	Acosh:   "acosh",
	Atanh:   "atanh",
	Acoth:   "acoth",
	Exp:     "exp",
	Log:     "log",
	Log2:    "log_2",
	Log10:   "log_10",
	LogN:    "log_n",
	Sqrt:    "sqrt",
	Cbrt:    "cbrt",
	Rad:     "rad",
	Deg:     "deg",
}

// String returns the operator tag shown on graph diagrams, "" for None.
func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Types returns every primitive type except None, in declaration order.
func Types() []Type {
	types := make([]Type, 0, numTypes-1)
	for t := None + 1; t < numTypes; t++ {
		types = append(types, t)
	}
	return types
}

// Rule holds the forward formula and local derivatives of a scalar primitive.
//
// p is the primitive's extra parameter: the base for LogN, unused otherwise.
// For unary primitives y is always 0 and Local returns dy = 0.
type Rule struct {
	Arity   int
	Forward func(x, y, p float64) float64
	// Domain returns a non-empty reason when (x, y, p) is outside the
	// primitive's domain. Nil means the primitive is defined everywhere.
	Domain func(x, y, p float64) string
	// Local returns d(out)/dx and d(out)/dy, given the forward result out.
	Local func(x, y, p, out float64) (dx, dy float64)
}

// Registry maps every scalar primitive to its Rule. MatMul and None have no
// entry.
var Registry = map[Type]Rule{
	Add:     addRule,
	Sub:     subRule,
	Mul:     mulRule,
	Div:     divRule,
	Pow:     powRule,
	Neg:     negRule,
	Abs:     absRule,
	Sigmoid: sigmoidRule,
	ReLU:    reluRule,
	Sin:     sinRule,
	Cos:     cosRule,
	Tan:     tanRule,
	Cotan:   cotanRule,
	Sinh:    sinhRule,
	Cosh:    coshRule,
	Tanh:    tanhRule,
	Coth:    cothRule,
	Sech:    sechRule,
	Csch:    cschRule,
	Asin:    asinRule,
	Acos:    acosRule,
	Atan:    atanRule,
	Acotan:  acotanRule,
	Asec:    asecRule,
	Acsc:    acscRule,
	Asinh:   asinhRule,
	Acosh:   acoshRule,
	Atanh:   atanhRule,
	Acoth:   acothRule,
	Exp:     expRule,
	Log:     logRule,
	Log2:    log2Rule,
	Log10:   log10Rule,
	LogN:    logNRule,
	Sqrt:    sqrtRule,
	Cbrt:    cbrtRule,
	Rad:     radRule,
	Deg:     degRule,
}

// Lookup returns the rule for t, or an error if t is not a scalar primitive.
func Lookup(t Type) (Rule, error) {
	rule, ok := Registry[t]
	if !ok {
		return Rule{}, errors.Errorf("ops: no scalar rule registered for %q (type %d)", t, int(t))
	}
	return rule, nil
}

// Eval computes the forward value of primitive t, failing with a
// *DomainError when the operands are outside its domain or any operand
// is NaN.
func Eval(t Type, x, y, p float64) (float64, error) {
	rule, err := Lookup(t)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(x) || (rule.Arity == 2 && math.IsNaN(y)) || math.IsNaN(p) {
		return 0, errors.WithStack(&DomainError{Op: t, X: x, Y: y, Reason: "NaN operand"})
	}
	if rule.Domain != nil {
		if reason := rule.Domain(x, y, p); reason != "" {
			return 0, errors.WithStack(&DomainError{Op: t, X: x, Y: y, Reason: reason})
		}
	}
	return rule.Forward(x, y, p), nil
}

// unary adapts a one-argument forward function to the Rule signature.
func unary(f func(float64) float64) func(x, _, _ float64) float64 {
	return func(x, _, _ float64) float64 { return f(x) }
}

// sign returns -1, 0 or 1.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
