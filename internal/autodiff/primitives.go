package autodiff

import "github.com/born-ml/micrograd/internal/autodiff/ops"

// binary evaluates a two-operand primitive. It panics, without creating a
// node, if the operands are outside the primitive's domain.
func (v *Value) binary(op ops.Type, other Operand) *Value {
	o := other.value()
	scalarOnly(op, v, o)
	data, err := ops.Eval(op, v.data, o.data, 0)
	if err != nil {
		panic(err)
	}
	return newNode(op, 0, data, v, o)
}

// unary evaluates a one-operand primitive with extra parameter param.
func (v *Value) unary(op ops.Type, param float64) *Value {
	scalarOnly(op, v)
	data, err := ops.Eval(op, v.data, 0, param)
	if err != nil {
		panic(err)
	}
	return newNode(op, param, data, v)
}

// Add returns v + o.
func (v *Value) Add(o Operand) *Value { return v.binary(ops.Add, o) }

// Sub returns v - o.
func (v *Value) Sub(o Operand) *Value { return v.binary(ops.Sub, o) }

// Mul returns v * o.
func (v *Value) Mul(o Operand) *Value { return v.binary(ops.Mul, o) }

// Div returns v / o. Division by zero is a domain error.
func (v *Value) Div(o Operand) *Value { return v.binary(ops.Div, o) }

// Pow returns v ** o. Both base and exponent receive gradients; the exponent's
// gradient is 0 when v <= 0.
func (v *Value) Pow(o Operand) *Value { return v.binary(ops.Pow, o) }

// Neg returns -v.
func (v *Value) Neg() *Value { return v.unary(ops.Neg, 0) }

// Abs returns |v|.
func (v *Value) Abs() *Value { return v.unary(ops.Abs, 0) }

// Sigmoid returns 1/(1+e^-v).
func (v *Value) Sigmoid() *Value { return v.unary(ops.Sigmoid, 0) }

// ReLU returns max(0, v).
func (v *Value) ReLU() *Value { return v.unary(ops.ReLU, 0) }

// Sin returns sin(v).
func (v *Value) Sin() *Value { return v.unary(ops.Sin, 0) }

// Cos returns cos(v).
func (v *Value) Cos() *Value { return v.unary(ops.Cos, 0) }

// Tan returns tan(v).
func (v *Value) Tan() *Value { return v.unary(ops.Tan, 0) }

// Cotan returns 1/tan(v).
func (v *Value) Cotan() *Value { return v.unary(ops.Cotan, 0) }

// Sinh returns sinh(v).
func (v *Value) Sinh() *Value { return v.unary(ops.Sinh, 0) }

// Cosh returns cosh(v).
func (v *Value) Cosh() *Value { return v.unary(ops.Cosh, 0) }

// Tanh returns tanh(v).
func (v *Value) Tanh() *Value { return v.unary(ops.Tanh, 0) }

// Coth returns cosh(v)/sinh(v); v must be non-zero.
func (v *Value) Coth() *Value { return v.unary(ops.Coth, 0) }

// Sech returns 1/cosh(v).
func (v *Value) Sech() *Value { return v.unary(ops.Sech, 0) }

// Csch returns 1/sinh(v); v must be non-zero.
func (v *Value) Csch() *Value { return v.unary(ops.Csch, 0) }

// Asin returns arcsin(v), for v in [-1, 1].
func (v *Value) Asin() *Value { return v.unary(ops.Asin, 0) }

// Acos returns arccos(v), for v in [-1, 1].
func (v *Value) Acos() *Value { return v.unary(ops.Acos, 0) }

// Atan returns arctan(v).
func (v *Value) Atan() *Value { return v.unary(ops.Atan, 0) }

// Acotan returns arctan(1/v).
func (v *Value) Acotan() *Value { return v.unary(ops.Acotan, 0) }

// Asec returns arccos(1/v), for |v| >= 1.
func (v *Value) Asec() *Value { return v.unary(ops.Asec, 0) }

// Acsc returns arcsin(1/v), for |v| >= 1.
func (v *Value) Acsc() *Value { return v.unary(ops.Acsc, 0) }

// Asinh returns arsinh(v).
func (v *Value) Asinh() *Value { return v.unary(ops.Asinh, 0) }

// Acosh returns arcosh(v), for v >= 1.
func (v *Value) Acosh() *Value { return v.unary(ops.Acosh, 0) }

// Atanh returns artanh(v), for |v| < 1.
func (v *Value) Atanh() *Value { return v.unary(ops.Atanh, 0) }

// Acoth returns artanh(1/v), for |v| > 1.
func (v *Value) Acoth() *Value { return v.unary(ops.Acoth, 0) }

// Exp returns e^v.
func (v *Value) Exp() *Value { return v.unary(ops.Exp, 0) }

// Log returns the natural logarithm of v.
func (v *Value) Log() *Value { return v.unary(ops.Log, 0) }

// Log2 returns the base-2 logarithm of v.
func (v *Value) Log2() *Value { return v.unary(ops.Log2, 0) }

// Log10 returns the base-10 logarithm of v.
func (v *Value) Log10() *Value { return v.unary(ops.Log10, 0) }

// LogN returns the base-n logarithm of v. The base is a constant and receives
// no gradient.
func (v *Value) LogN(base float64) *Value { return v.unary(ops.LogN, base) }

// Sqrt returns the square root of v.
func (v *Value) Sqrt() *Value { return v.unary(ops.Sqrt, 0) }

// Cbrt returns the cube root of v.
func (v *Value) Cbrt() *Value { return v.unary(ops.Cbrt, 0) }

// Rad converts v from degrees to radians.
func (v *Value) Rad() *Value { return v.unary(ops.Rad, 0) }

// Deg converts v from radians to degrees.
func (v *Value) Deg() *Value { return v.unary(ops.Deg, 0) }
