// Package gradcheck compares gradients computed by Backward with central
// finite differences of the forward value.
//
// Example:
//
//	res, err := gradcheck.Check(func(x *autodiff.Value) *autodiff.Value {
//	    return x.Mul(x).Sin()
//	}, 0.7, gradcheck.DefaultConfig())
package gradcheck

import (
	"math"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/diff/fd"
	"k8s.io/klog/v2"
)

// Config configures a gradient check.
type Config struct {
	Epsilon   float64 // Finite-difference step (default: 1e-6)
	Tolerance float64 // Allowed |analytic - numeric| relative to max(1, |numeric|) (default: 1e-4)
}

// DefaultConfig returns the settings used when a Config field is zero.
func DefaultConfig() Config {
	return Config{
		Epsilon:   1e-6,
		Tolerance: 1e-4,
	}
}

// Result holds both gradient estimates at Point.
type Result struct {
	Point    float64
	Analytic float64
	Numeric  float64
}

// Diff returns |Analytic - Numeric|.
func (r Result) Diff() float64 {
	return math.Abs(r.Analytic - r.Numeric)
}

// Numeric estimates f'(x) with the central difference (f(x+h) - f(x-h)) / 2h.
func Numeric(f func(float64) float64, x, h float64) float64 {
	return fd.Derivative(f, x, &fd.Settings{Formula: fd.Central, Step: h})
}

// Check builds f on a fresh leaf at x, runs Backward on the result and
// compares the leaf's gradient with a central difference of f's forward
// value. It returns an error if building f fails or the estimates disagree.
func Check(f func(x *autodiff.Value) *autodiff.Value, x float64, config Config) (Result, error) {
	defaults := DefaultConfig()
	if config.Epsilon == 0 {
		config.Epsilon = defaults.Epsilon
	}
	if config.Tolerance == 0 {
		config.Tolerance = defaults.Tolerance
	}

	res := Result{Point: x}
	leaf := autodiff.NewLabeled(x, "x")
	out, err := autodiff.Try(func() *autodiff.Value { return f(leaf) })
	if err != nil {
		return res, errors.Wrapf(err, "gradcheck: building graph at x=%g", x)
	}
	if err = out.Backward(); err != nil {
		return res, errors.Wrapf(err, "gradcheck: backward at x=%g", x)
	}
	res.Analytic = leaf.Grad()

	var evalErr error
	forward := func(at float64) float64 {
		v, err := autodiff.Try(func() *autodiff.Value { return f(autodiff.New(at)) })
		if err != nil {
			evalErr = err
			return math.NaN()
		}
		return v.Data()
	}
	res.Numeric = Numeric(forward, x, config.Epsilon)
	if evalErr != nil {
		return res, errors.Wrapf(evalErr, "gradcheck: finite difference around x=%g", x)
	}

	if diff := res.Diff(); math.IsNaN(diff) || diff > config.Tolerance*math.Max(1, math.Abs(res.Numeric)) {
		klog.V(1).Infof("gradcheck: mismatch at x=%g: analytic=%g numeric=%g", x, res.Analytic, res.Numeric)
		return res, errors.Errorf("gradcheck: analytic gradient %g differs from numeric %g at x=%g (tolerance %g)",
			res.Analytic, res.Numeric, x, config.Tolerance)
	}
	return res, nil
}
