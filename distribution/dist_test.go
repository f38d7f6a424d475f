// Package distribution_test covers descriptor validation and sampling.
package distribution_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ambiscape/distribution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

// TestValidate_Shapes checks accepted and rejected descriptor arguments.
func TestValidate_Shapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		d    distribution.Dist[float64]
		ok   bool
	}{
		{"const", distribution.NewConst(3.0), true},
		{"choose", distribution.NewChoose(1.0, 2.0), true},
		{"choose empty", distribution.NewChoose[float64](), true},
		{"uniform", distribution.NewUniform(0, 1), true},
		{"uniform degenerate", distribution.NewUniform(2, 2), true},
		{"uniform reversed", distribution.NewUniform(1, 0), false},
		{"uniform inf", distribution.NewUniform(0, math.Inf(1)), false},
		{"normal", distribution.NewNormal(0, 1), true},
		{"normal negative std", distribution.NewNormal(0, -1), false},
		{"truncnorm", distribution.NewTruncNorm(0, 1, -1, 1), true},
		{"truncnorm zero std", distribution.NewTruncNorm(0, 0, -1, 1), true},
		{"truncnorm negative std", distribution.NewTruncNorm(0, -1, -1, 1), false},
		{"truncnorm reversed", distribution.NewTruncNorm(0, 1, 1, -1), false},
		{"truncnorm nan", distribution.NewTruncNorm(math.NaN(), 1, -1, 1), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := distribution.Validate(tc.d)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, distribution.ErrInvalidDistribution)
		})
	}
}

// TestSample_ConstChoose checks the discrete kinds.
func TestSample_ConstChoose(t *testing.T) {
	t.Parallel()
	s := distribution.NewSampler(42)

	v, err := distribution.Sample(s, distribution.NewConst("dog"))
	require.NoError(t, err)
	assert.Equal(t, "dog", v)

	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		x, err := distribution.Sample(s, distribution.NewChoose(1, 2, 3))
		require.NoError(t, err)
		seen[x] = true
	}
	assert.Len(t, seen, 3, "every element should be drawn eventually")

	_, err = distribution.Sample(s, distribution.NewChoose[int]())
	require.ErrorIs(t, err, distribution.ErrInvalidDistribution)
}

// TestSample_ContinuousBounds checks uniform and truncnorm stay inside their bounds.
func TestSample_ContinuousBounds(t *testing.T) {
	t.Parallel()
	s := distribution.NewSampler(7)

	for i := 0; i < 1000; i++ {
		u, err := distribution.Sample(s, distribution.NewUniform(-2, 3))
		require.NoError(t, err)
		require.GreaterOrEqual(t, u, -2.0)
		require.Less(t, u, 3.0)

		tn, err := distribution.Sample(s, distribution.NewTruncNorm(0, 5, 1, 2))
		require.NoError(t, err)
		require.GreaterOrEqual(t, tn, 1.0)
		require.LessOrEqual(t, tn, 2.0)

		// right tail far from the mean goes through the mirrored branch
		far, err := distribution.Sample(s, distribution.NewTruncNorm(0, 1, 6, 7))
		require.NoError(t, err)
		require.GreaterOrEqual(t, far, 6.0)
		require.LessOrEqual(t, far, 7.0)
	}
}

// TestSample_TruncNormDegenerate checks std==0 clamps the mean into the bounds.
func TestSample_TruncNormDegenerate(t *testing.T) {
	t.Parallel()
	s := distribution.NewSampler(1)

	v, err := distribution.Sample(s, distribution.NewTruncNorm(5, 0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = distribution.Sample(s, distribution.NewTruncNorm(0.5, 0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
}

// TestSample_TruncNormMedian checks draws split evenly around the truncated median.
func TestSample_TruncNormMedian(t *testing.T) {
	t.Parallel()
	s := distribution.NewSampler(11)
	lo, hi := -1.0, 2.0
	median := distuv.UnitNormal.Quantile((distuv.UnitNormal.CDF(lo) + distuv.UnitNormal.CDF(hi)) / 2)
	assert.InDelta(t, 0.171, median, 1e-3)

	const n = 20000
	below := 0
	for i := 0; i < n; i++ {
		x, err := distribution.Sample(s, distribution.NewTruncNorm(0, 1, lo, hi))
		require.NoError(t, err)
		if x < median {
			below++
		}
	}
	assert.InDelta(t, 0.5, float64(below)/n, 0.02)
}

// TestSample_NormalMoments checks the first two moments loosely.
func TestSample_NormalMoments(t *testing.T) {
	t.Parallel()
	s := distribution.NewSampler(99)
	const n = 20000
	var sum, sq float64
	for i := 0; i < n; i++ {
		x, err := distribution.Sample(s, distribution.NewNormal(3, 2))
		require.NoError(t, err)
		sum += x
		sq += x * x
	}
	mean := sum / n
	variance := sq/n - mean*mean
	assert.InDelta(t, 3.0, mean, 0.1)
	assert.InDelta(t, 4.0, variance, 0.3)
}

// TestKind_RoundTrip checks tag parsing.
func TestKind_RoundTrip(t *testing.T) {
	t.Parallel()
	for _, k := range []distribution.Kind{
		distribution.KindConst, distribution.KindChoose, distribution.KindUniform,
		distribution.KindNormal, distribution.KindTruncNorm,
	} {
		got, err := distribution.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := distribution.ParseKind("poisson")
	require.ErrorIs(t, err, distribution.ErrInvalidDistribution)
	assert.True(t, distribution.KindNormal.Continuous())
	assert.False(t, distribution.KindChoose.Continuous())
}
