package ops

import "math"

// sigmoidRule: out = 1/(1+e^-x), d/dx = out·(1-out).
var sigmoidRule = Rule{
	Arity:   1,
	Forward: unary(func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }),
	Local:   func(_, _, _, out float64) (float64, float64) { return out * (1 - out), 0 },
}

// reluRule: out = max(0, x), d/dx = 1 if x > 0 else 0.
var reluRule = Rule{
	Arity:   1,
	Forward: unary(func(x float64) float64 { return math.Max(0, x) }),
	Local: func(x, _, _, _ float64) (float64, float64) {
		if x > 0 {
			return 1, 0
		}
		return 0, 0
	},
}
