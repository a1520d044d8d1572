package autodiff

// Operand is the right-hand side of a binary primitive: either a *Value or a
// Const. The interface is sealed; coercion to a node happens once, at the
// entry of the primitive.
type Operand interface {
	value() *Value
}

func (v *Value) value() *Value { return v }

// Const is a plain scalar used as an operand. It becomes a fresh leaf, with no
// operands, when a primitive consumes it.
//
// Methods on Const put the constant on the left-hand side:
//
//	autodiff.Const(1).Sub(x) // 1 - x
//	autodiff.Const(2).Pow(x) // 2^x
type Const float64

func (c Const) value() *Value { return New(float64(c)) }

// Add returns c + o.
func (c Const) Add(o Operand) *Value { return c.value().Add(o) }

// Sub returns c - o.
func (c Const) Sub(o Operand) *Value { return c.value().Sub(o) }

// Mul returns c * o.
func (c Const) Mul(o Operand) *Value { return c.value().Mul(o) }

// Div returns c / o.
func (c Const) Div(o Operand) *Value { return c.value().Div(o) }

// Pow returns c ** o.
func (c Const) Pow(o Operand) *Value { return c.value().Pow(o) }
