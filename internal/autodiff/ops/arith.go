package ops

import "math"

// addRule: out = x + y, d/dx = 1, d/dy = 1.
var addRule = Rule{
	Arity:   2,
	Forward: func(x, y, _ float64) float64 { return x + y },
	Local:   func(_, _, _, _ float64) (float64, float64) { return 1, 1 },
}

// subRule: out = x - y, d/dx = 1, d/dy = -1.
var subRule = Rule{
	Arity:   2,
	Forward: func(x, y, _ float64) float64 { return x - y },
	Local:   func(_, _, _, _ float64) (float64, float64) { return 1, -1 },
}

// mulRule: out = x * y, d/dx = y, d/dy = x.
var mulRule = Rule{
	Arity:   2,
	Forward: func(x, y, _ float64) float64 { return x * y },
	Local:   func(x, y, _, _ float64) (float64, float64) { return y, x },
}

// divRule: out = x / y, d/dx = 1/y, d/dy = -x/y².
var divRule = Rule{
	Arity:   2,
	Forward: func(x, y, _ float64) float64 { return x / y },
	Domain: func(_, y, _ float64) string {
		if y == 0 {
			return "division by zero"
		}
		return ""
	},
	Local: func(x, y, _, _ float64) (float64, float64) {
		return 1 / y, -x / (y * y)
	},
}

// powRule: out = x^y, d/dx = y·x^(y-1), d/dy = x^y·ln(x).
//
// The derivative with respect to the exponent is taken as 0 when x <= 0,
// where ln(x) is undefined. With y == 0 the result is the constant 1, so
// d/dx is 0 also at x == 0.
var powRule = Rule{
	Arity:   2,
	Forward: func(x, y, _ float64) float64 { return math.Pow(x, y) },
	Domain: func(x, y, _ float64) string {
		if !isFinite(x) || !isFinite(y) {
			return ""
		}
		out := math.Pow(x, y)
		switch {
		case math.IsNaN(out):
			return "negative base with non-integer exponent"
		case math.IsInf(out, 0) && x == 0:
			return "zero base with negative exponent"
		}
		return ""
	},
	Local: func(x, y, _, out float64) (float64, float64) {
		var dx float64
		if y != 0 {
			dx = y * math.Pow(x, y-1)
		}
		if x <= 0 {
			return dx, 0
		}
		return dx, out * math.Log(x)
	},
}

// negRule: out = -x, d/dx = -1.
var negRule = Rule{
	Arity:   1,
	Forward: unary(func(x float64) float64 { return -x }),
	Local:   func(_, _, _, _ float64) (float64, float64) { return -1, 0 },
}

// absRule: out = |x|, d/dx = sign(x), with sign(0) = 0.
var absRule = Rule{
	Arity:   1,
	Forward: unary(math.Abs),
	Local:   func(x, _, _, _ float64) (float64, float64) { return sign(x), 0 },
}
