package ops

import "math"

const (
	radPerDeg = math.Pi / 180
	degPerRad = 180 / math.Pi
)

var sinRule = Rule{
	Arity:   1,
	Forward: unary(math.Sin),
	Local:   func(x, _, _, _ float64) (float64, float64) { return math.Cos(x), 0 },
}

var cosRule = Rule{
	Arity:   1,
	Forward: unary(math.Cos),
	Local:   func(x, _, _, _ float64) (float64, float64) { return -math.Sin(x), 0 },
}

// tanRule: d/dx = 1/cos²(x).
var tanRule = Rule{
	Arity:   1,
	Forward: unary(math.Tan),
	Local: func(x, _, _, _ float64) (float64, float64) {
		c := math.Cos(x)
		return 1 / (c * c), 0
	},
}

// cotanRule: out = 1/tan(x), d/dx = -1/sin²(x).
var cotanRule = Rule{
	Arity:   1,
	Forward: unary(func(x float64) float64 { return 1 / math.Tan(x) }),
	Domain: func(x, _, _ float64) string {
		if math.Sin(x) == 0 {
			return "cotangent undefined where sin(x) = 0"
		}
		return ""
	},
	Local: func(x, _, _, _ float64) (float64, float64) {
		s := math.Sin(x)
		return -1 / (s * s), 0
	},
}

var asinRule = Rule{
	Arity:   1,
	Forward: unary(math.Asin),
	Domain:  outsideUnitInterval,
	Local: func(x, _, _, _ float64) (float64, float64) {
		return 1 / math.Sqrt(1-x*x), 0
	},
}

var acosRule = Rule{
	Arity:   1,
	Forward: unary(math.Acos),
	Domain:  outsideUnitInterval,
	Local: func(x, _, _, _ float64) (float64, float64) {
		return -1 / math.Sqrt(1-x*x), 0
	},
}

var atanRule = Rule{
	Arity:   1,
	Forward: unary(math.Atan),
	Local: func(x, _, _, _ float64) (float64, float64) {
		return 1 / (1 + x*x), 0
	},
}

// acotanRule: out = atan(1/x), d/dx = -1/(1+x²).
var acotanRule = Rule{
	Arity:   1,
	Forward: unary(func(x float64) float64 { return math.Atan(1 / x) }),
	Domain: func(x, _, _ float64) string {
		if x == 0 {
			return "inverse cotangent undefined at 0"
		}
		return ""
	},
	Local: func(x, _, _, _ float64) (float64, float64) {
		return -1 / (1 + x*x), 0
	},
}

// asecRule: out = acos(1/x), d/dx = 1/(|x|·sqrt(x²-1)).
var asecRule = Rule{
	Arity:   1,
	Forward: unary(func(x float64) float64 { return math.Acos(1 / x) }),
	Domain:  insideUnitInterval,
	Local: func(x, _, _, _ float64) (float64, float64) {
		return 1 / (math.Abs(x) * math.Sqrt(x*x-1)), 0
	},
}

// acscRule: out = asin(1/x), d/dx = -1/(|x|·sqrt(x²-1)).
var acscRule = Rule{
	Arity:   1,
	Forward: unary(func(x float64) float64 { return math.Asin(1 / x) }),
	Domain:  insideUnitInterval,
	Local: func(x, _, _, _ float64) (float64, float64) {
		return -1 / (math.Abs(x) * math.Sqrt(x*x-1)), 0
	},
}

var radRule = Rule{
	Arity:   1,
	Forward: unary(func(x float64) float64 { return x * radPerDeg }),
	Local:   func(_, _, _, _ float64) (float64, float64) { return radPerDeg, 0 },
}

var degRule = Rule{
	Arity:   1,
	Forward: unary(func(x float64) float64 { return x * degPerRad }),
	Local:   func(_, _, _, _ float64) (float64, float64) { return degPerRad, 0 },
}

func outsideUnitInterval(x, _, _ float64) string {
	if x < -1 || x > 1 {
		return "argument outside [-1, 1]"
	}
	return ""
}

func insideUnitInterval(x, _, _ float64) string {
	if x > -1 && x < 1 {
		return "argument inside (-1, 1)"
	}
	return ""
}
