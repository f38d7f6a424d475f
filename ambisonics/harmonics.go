// SPDX-License-Identifier: MIT
// Package ambisonics - spherical harmonics.
//
// Stage 1: complex harmonic Y_l^m(φ, ϑ) with physics normalization and
// Condon–Shortley phase, evaluated at polar angle ϑ = θ - π/2.
// Stage 2: real or imaginary part by the sign of m.
// Stage 3: divide out the physics normalization, apply (-1)^|m| and SN3D.

package ambisonics

import (
	"fmt"
	"math"
	"math/cmplx"
)

// SphericalHarmonic returns the SN3D real spherical harmonic of degree l and
// index m at the given direction. Angles are in radians and not range-limited.
//
// Errors: ErrInvalidOrder, ErrInvalidDegree, ErrInvalidAngle.
// Complexity: O(l).
func SphericalHarmonic(azimuth, elevation float64, l, m int) (float64, error) {
	if err := validateDegree(l, m); err != nil {
		return 0, fmt.Errorf("SphericalHarmonic: %w", err)
	}
	if err := validateAngle("azimuth", azimuth); err != nil {
		return 0, fmt.Errorf("SphericalHarmonic: %w", err)
	}
	if err := validateAngle("elevation", elevation); err != nil {
		return 0, fmt.Errorf("SphericalHarmonic: %w", err)
	}
	return sn3d(azimuth, elevation, l, m), nil
}

// sn3d assumes validated input.
func sn3d(azimuth, elevation float64, l, m int) float64 {
	am := abs(m)
	y := complexHarmonic(l, am, azimuth, elevation-math.Pi/2)

	var coef float64
	if m >= 0 {
		coef = real(y)
	} else {
		coef = imag(y)
	}

	ratio := factorialRatio(l, am)
	physics := math.Sqrt(float64(2*l+1) / (4 * math.Pi) * ratio)
	norm := math.Sqrt((2 - kronecker(am, 0)) * ratio)
	if am%2 == 1 {
		norm = -norm
	}
	return coef / physics * norm
}

// complexHarmonic is Y_l^m(azimuth, polar) for m ≥ 0 in the physics
// convention: sqrt((2l+1)/4π · (l-m)!/(l+m)!) · P_l^m(cos polar) · e^{i m azimuth},
// where P_l^m includes the Condon–Shortley phase.
func complexHarmonic(l, m int, azimuth, polar float64) complex128 {
	n := math.Sqrt(float64(2*l+1) / (4 * math.Pi) * factorialRatio(l, m))
	p := legendre(l, m, math.Cos(polar))
	return complex(n*p, 0) * cmplx.Exp(complex(0, float64(m)*azimuth))
}

// legendre evaluates the associated Legendre function P_l^m(x), 0 ≤ m ≤ l,
// with Condon–Shortley phase, by upward recurrence in l.
//
// Complexity: O(l).
func legendre(l, m int, x float64) float64 {
	s := math.Sqrt(math.Max(0, 1-x*x))

	// P_m^m = (-1)^m (2m-1)!! (1-x²)^{m/2}
	pmm := 1.0
	for k := 1; k <= m; k++ {
		pmm *= -float64(2*k-1) * s
	}
	if l == m {
		return pmm
	}

	// P_{m+1}^m = x (2m+1) P_m^m
	pm1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pm1
	}

	var pl float64
	for k := m + 2; k <= l; k++ {
		pl = (x*float64(2*k-1)*pm1 - float64(k+m-1)*pmm) / float64(k-m)
		pmm, pm1 = pm1, pl
	}
	return pl
}

// factorialRatio returns (l-m)!/(l+m)! for 0 ≤ m ≤ l.
func factorialRatio(l, m int) float64 {
	r := 1.0
	for k := l - m + 1; k <= l+m; k++ {
		r /= float64(k)
	}
	return r
}

func kronecker(a, b int) float64 {
	if a == b {
		return 1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
