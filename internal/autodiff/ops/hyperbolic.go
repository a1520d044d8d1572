package ops

import "math"

var sinhRule = Rule{
	Arity:   1,
	Forward: unary(math.Sinh),
	Local:   func(x, _, _, _ float64) (float64, float64) { return math.Cosh(x), 0 },
}

var coshRule = Rule{
	Arity:   1,
	Forward: unary(math.Cosh),
	Local:   func(x, _, _, _ float64) (float64, float64) { return math.Sinh(x), 0 },
}

// tanhRule: d/dx = 1 - tanh²(x).
var tanhRule = Rule{
	Arity:   1,
	Forward: unary(math.Tanh),
	Local:   func(_, _, _, out float64) (float64, float64) { return 1 - out*out, 0 },
}

// cothRule: out = cosh(x)/sinh(x), d/dx = 1 - coth²(x).
var cothRule = Rule{
	Arity:   1,
	Forward: unary(func(x float64) float64 { return 1 / math.Tanh(x) }),
	Domain:  zeroUndefined,
	Local:   func(_, _, _, out float64) (float64, float64) { return 1 - out*out, 0 },
}

// sechRule: out = 1/cosh(x), d/dx = -tanh(x)·sech(x).
var sechRule = Rule{
	Arity:   1,
	Forward: unary(func(x float64) float64 { return 1 / math.Cosh(x) }),
	Local:   func(x, _, _, out float64) (float64, float64) { return -math.Tanh(x) * out, 0 },
}

// cschRule: out = 1/sinh(x), d/dx = -coth(x)·csch(x).
var cschRule = Rule{
	Arity:   1,
	Forward: unary(func(x float64) float64 { return 1 / math.Sinh(x) }),
	Domain:  zeroUndefined,
	Local:   func(x, _, _, out float64) (float64, float64) { return -out / math.Tanh(x), 0 },
}

var asinhRule = Rule{
	Arity:   1,
	Forward: unary(math.Asinh),
	Local: func(x, _, _, _ float64) (float64, float64) {
		return 1 / math.Sqrt(x*x+1), 0
	},
}

var acoshRule = Rule{
	Arity:   1,
	Forward: unary(math.Acosh),
	Domain: func(x, _, _ float64) string {
		if x < 1 {
			return "argument below 1"
		}
		return ""
	},
	Local: func(x, _, _, _ float64) (float64, float64) {
		return 1 / math.Sqrt(x*x-1), 0
	},
}

var atanhRule = Rule{
	Arity:   1,
	Forward: unary(math.Atanh),
	Domain: func(x, _, _ float64) string {
		if x <= -1 || x >= 1 {
			return "argument outside (-1, 1)"
		}
		return ""
	},
	Local: func(x, _, _, _ float64) (float64, float64) {
		return 1 / (1 - x*x), 0
	},
}

// acothRule: out = atanh(1/x), d/dx = 1/(1-x²).
var acothRule = Rule{
	Arity:   1,
	Forward: unary(func(x float64) float64 { return math.Atanh(1 / x) }),
	Domain: func(x, _, _ float64) string {
		if x >= -1 && x <= 1 {
			return "argument inside [-1, 1]"
		}
		return ""
	},
	Local: func(x, _, _, _ float64) (float64, float64) {
		return 1 / (1 - x*x), 0
	},
}

func zeroUndefined(x, _, _ float64) string {
	if x == 0 {
		return "undefined at 0"
	}
	return ""
}
