// SPDX-License-Identifier: MIT

package spherical

import (
	"fmt"
	"math"
)

// Direction is a point on the unit sphere in radians.
type Direction struct {
	Azimuth   float64 `json:"azimuth" yaml:"azimuth"`
	Elevation float64 `json:"elevation" yaml:"elevation"`
}

// Point is a cartesian vector.
type Point struct {
	X, Y, Z float64
}

// Norm returns the euclidean length of p.
func (p Point) Norm() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z) }

// ToCartesian returns the point at radius r in direction d.
// Complexity: O(1).
func ToCartesian(d Direction, r float64) Point {
	ce := math.Cos(d.Elevation)
	return Point{
		X: r * ce * math.Cos(d.Azimuth),
		Y: r * ce * math.Sin(d.Azimuth),
		Z: r * math.Sin(d.Elevation),
	}
}

// FromCartesian returns the direction and radius of p. The azimuth is in
// (-π, π] as returned by atan2; callers wrap it when needed.
//
// Errors: ErrDegenerateVector for the zero vector or NaN/Inf components.
// Complexity: O(1).
func FromCartesian(p Point) (Direction, float64, error) {
	r := p.Norm()
	if r == 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return Direction{}, 0, fmt.Errorf("FromCartesian(%v): %w", p, ErrDegenerateVector)
	}
	return Direction{
		Azimuth:   math.Atan2(p.Y, p.X),
		Elevation: math.Asin(p.Z / r),
	}, r, nil
}

// Degrees converts d to degrees.
func (d Direction) Degrees() (az, el float64) {
	return d.Azimuth * 180 / math.Pi, d.Elevation * 180 / math.Pi
}

// FromDegrees builds a Direction from degree values.
func FromDegrees(az, el float64) Direction {
	return Direction{Azimuth: az * math.Pi / 180, Elevation: el * math.Pi / 180}
}

// Wrap maps x into [lo, hi) by repeated addition or subtraction of hi-lo.
// Complexity: O(1).
func Wrap(x, lo, hi float64) float64 {
	w := hi - lo
	return math.Mod(math.Mod(x-lo, w)+w, w) + lo
}

// WrapAzimuth maps az into [0, 2π).
func WrapAzimuth(az float64) float64 { return Wrap(az, 0, 2*math.Pi) }

// WrapElevation folds el over the poles into [-π/2, π/2]; both poles are
// fixed points. The azimuth flip that crossing a pole implies is not applied.
func WrapElevation(el float64) float64 {
	x := Wrap(el+math.Pi/2, 0, 2*math.Pi)
	if x > math.Pi {
		x = 2*math.Pi - x
	}
	return x - math.Pi/2
}

// Wrapped returns d with both angles wrapped.
func (d Direction) Wrapped() Direction {
	return Direction{Azimuth: WrapAzimuth(d.Azimuth), Elevation: WrapElevation(d.Elevation)}
}
