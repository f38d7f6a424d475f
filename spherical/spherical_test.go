// Package spherical_test covers conversions, wrapping and nearest-direction search.
package spherical_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ambiscape/spherical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip checks cartesian → spherical → cartesian for non-degenerate vectors.
func TestRoundTrip(t *testing.T) {
	t.Parallel()
	pts := []spherical.Point{
		{X: 1}, {Y: 1}, {Z: 1}, {Z: -2},
		{X: 1, Y: 2, Z: 3}, {X: -0.3, Y: -4, Z: 0.5}, {X: -1, Y: 0, Z: 0},
	}
	for _, p := range pts {
		d, r, err := spherical.FromCartesian(p)
		require.NoError(t, err)
		q := spherical.ToCartesian(d, r)
		assert.InDelta(t, p.X, q.X, 1e-12)
		assert.InDelta(t, p.Y, q.Y, 1e-12)
		assert.InDelta(t, p.Z, q.Z, 1e-12)
	}
}

// TestFromCartesian_Degenerate checks the zero vector is rejected.
func TestFromCartesian_Degenerate(t *testing.T) {
	t.Parallel()
	_, _, err := spherical.FromCartesian(spherical.Point{})
	require.ErrorIs(t, err, spherical.ErrDegenerateVector)
	_, _, err = spherical.FromCartesian(spherical.Point{X: math.NaN()})
	require.ErrorIs(t, err, spherical.ErrDegenerateVector)
}

// TestAxes checks the axis convention.
func TestAxes(t *testing.T) {
	t.Parallel()
	y := spherical.ToCartesian(spherical.Direction{Azimuth: math.Pi / 2}, 1)
	assert.InDelta(t, 1, y.Y, 1e-12)
	z := spherical.ToCartesian(spherical.Direction{Elevation: math.Pi / 2}, 1)
	assert.InDelta(t, 1, z.Z, 1e-12)

	d := spherical.FromDegrees(90, 45)
	az, el := d.Degrees()
	assert.InDelta(t, 90, az, 1e-12)
	assert.InDelta(t, 45, el, 1e-12)
}

// TestWrap checks the modular wrap used for angles.
func TestWrap(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 0.5, spherical.Wrap(2.5, 0, 2), 1e-12)
	assert.InDelta(t, 1.5, spherical.Wrap(-0.5, 0, 2), 1e-12)
	assert.InDelta(t, 0, spherical.WrapAzimuth(2*math.Pi), 1e-12)
	assert.InDelta(t, math.Pi, spherical.WrapAzimuth(-math.Pi), 1e-12)
	assert.InDelta(t, math.Pi/2, spherical.WrapElevation(math.Pi/2), 1e-12)
	assert.InDelta(t, -math.Pi/2, spherical.WrapElevation(-math.Pi/2), 1e-12)
	assert.InDelta(t, 0.3, spherical.WrapElevation(0.3), 1e-12)
	// past a pole the angle folds back
	assert.InDelta(t, math.Pi/2-0.2, spherical.WrapElevation(math.Pi/2+0.2), 1e-12)
	assert.InDelta(t, -math.Pi/2+0.2, spherical.WrapElevation(-math.Pi/2-0.2), 1e-12)
	assert.InDelta(t, -0.1, spherical.WrapElevation(0.1+math.Pi), 1e-12)
	assert.InDelta(t, 0.3, spherical.WrapElevation(0.3+2*math.Pi), 1e-12)
}

// TestClosest_Criteria checks the three metrics.
func TestClosest_Criteria(t *testing.T) {
	t.Parallel()
	speakers := []spherical.Direction{
		{Azimuth: 0}, {Azimuth: math.Pi / 2}, {Azimuth: math.Pi}, {Azimuth: 3 * math.Pi / 2},
	}

	idx, err := spherical.Closest(spherical.Direction{Azimuth: 0.9}, speakers, spherical.ByAzimuth)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	// circular distance: 6.0 rad is closer to 0 than to 3π/2
	idx, err = spherical.Closest(spherical.Direction{Azimuth: 6.0}, speakers, spherical.ByAzimuth)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	layers := []spherical.Direction{{Elevation: -0.5}, {Elevation: 0}, {Elevation: 0.6}}
	idx, err = spherical.Closest(spherical.Direction{Azimuth: 2, Elevation: 0.4}, layers, spherical.ByElevation)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	mixed := []spherical.Direction{{Azimuth: 0.2, Elevation: 1.0}, {Azimuth: 0.6, Elevation: 0.1}}
	idx, err = spherical.Closest(spherical.Direction{}, mixed, spherical.BySurface)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	// ties resolve to the first candidate
	twins := []spherical.Direction{{Azimuth: 0.5}, {Azimuth: 0.5}}
	idx, err = spherical.Closest(spherical.Direction{Azimuth: 1}, twins, spherical.ByAzimuth)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

// TestClosest_Errors checks empty and unknown inputs.
func TestClosest_Errors(t *testing.T) {
	t.Parallel()
	_, err := spherical.Closest(spherical.Direction{}, nil, spherical.ByAzimuth)
	require.ErrorIs(t, err, spherical.ErrNoCandidates)
	_, err = spherical.Closest(spherical.Direction{}, []spherical.Direction{{}}, spherical.Criterion(9))
	require.ErrorIs(t, err, spherical.ErrUnknownCriterion)
}
