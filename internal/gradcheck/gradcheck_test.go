package gradcheck

import (
	"math"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/autodiff/ops"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumeric(t *testing.T) {
	assert.InDelta(t, math.Cos(0.3), Numeric(math.Sin, 0.3, 1e-6), 1e-8)
	assert.InDelta(t, 12.0, Numeric(func(x float64) float64 { return x * x * x }, 2, 1e-5), 1e-6)
}

func TestCheck_Passes(t *testing.T) {
	res, err := Check(func(x *autodiff.Value) *autodiff.Value {
		return x.Mul(x).Sin()
	}, 0.7, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 0.7, res.Point)
	assert.InDelta(t, math.Cos(0.49)*1.4, res.Analytic, 1e-12)
	assert.Less(t, res.Diff(), 1e-6)
}

func TestCheck_ZeroConfigUsesDefaults(t *testing.T) {
	_, err := Check(func(x *autodiff.Value) *autodiff.Value { return x.Exp() }, 1, Config{})
	assert.NoError(t, err)
}

// TestCheck_DetectsMismatch uses a function whose output is a fresh leaf, so
// no gradient reaches x although the value depends on it.
func TestCheck_DetectsMismatch(t *testing.T) {
	res, err := Check(func(x *autodiff.Value) *autodiff.Value {
		return autodiff.New(x.Data() * x.Data())
	}, 3, DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "differs from numeric")
	assert.Equal(t, 0.0, res.Analytic)
	assert.InDelta(t, 6.0, res.Numeric, 1e-4)
}

func TestCheck_DomainError(t *testing.T) {
	_, err := Check((*autodiff.Value).Log, -1, DefaultConfig())
	require.Error(t, err)
	var domainErr *ops.DomainError
	assert.True(t, errors.As(err, &domainErr))
}

func TestCheck_DomainErrorInFiniteDifference(t *testing.T) {
	// sqrt(0) is defined, sqrt(-h) is not.
	_, err := Check((*autodiff.Value).Sqrt, 0, DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "finite difference")
}
