package ops

import "math"

// expRule: d/dx = e^x = out.
var expRule = Rule{
	Arity:   1,
	Forward: unary(math.Exp),
	Local:   func(_, _, _, out float64) (float64, float64) { return out, 0 },
}

var logRule = logRuleFor(math.E)

var log2Rule = logRuleFor(2)

var log10Rule = logRuleFor(10)

// logNRule reads the base from the rule parameter p.
var logNRule = Rule{
	Arity:   1,
	Forward: func(x, _, p float64) float64 { return math.Log(x) / math.Log(p) },
	Domain: func(x, _, p float64) string {
		switch {
		case p <= 0 || p == 1:
			return "logarithm base must be positive and not 1"
		case x <= 0:
			return "logarithm of non-positive number"
		}
		return ""
	},
	Local: func(x, _, p, _ float64) (float64, float64) {
		return 1 / (x * math.Log(p)), 0
	},
}

// logRuleFor builds the rule of a fixed-base logarithm:
// d(log_b(x))/dx = 1/(x·ln(b)).
func logRuleFor(base float64) Rule {
	lnBase := math.Log(base)
	forward := math.Log
	switch base {
	case 2:
		forward = math.Log2
	case 10:
		forward = math.Log10
	}
	return Rule{
		Arity:   1,
		Forward: unary(forward),
		Domain:  nonPositiveUndefined,
		Local: func(x, _, _, _ float64) (float64, float64) {
			return 1 / (x * lnBase), 0
		},
	}
}

// sqrtRule: d/dx = 1/(2·sqrt(x)).
var sqrtRule = Rule{
	Arity:   1,
	Forward: unary(math.Sqrt),
	Domain: func(x, _, _ float64) string {
		if x < 0 {
			return "square root of negative number"
		}
		return ""
	},
	Local: func(_, _, _, out float64) (float64, float64) { return 1 / (2 * out), 0 },
}

// cbrtRule: d/dx = 1/(3·cbrt(x)²). Defined for negative x.
var cbrtRule = Rule{
	Arity:   1,
	Forward: unary(math.Cbrt),
	Local:   func(_, _, _, out float64) (float64, float64) { return 1 / (3 * out * out), 0 },
}

func nonPositiveUndefined(x, _, _ float64) string {
	if x <= 0 {
		return "logarithm of non-positive number"
	}
	return ""
}
