// SPDX-License-Identifier: MIT

package ambisonics

import (
	"fmt"

	"github.com/katalvlaran/ambiscape/matrix"
	"github.com/katalvlaran/ambiscape/spherical"
)

// Coefficients returns the (order+1)² SN3D gains for a point source at the
// given direction, in ACN order. Coefficient 0 is always 1.
//
// Errors: ErrInvalidOrder, ErrInvalidAngle.
// Complexity: O(order³) (O(l) Legendre per channel).
func Coefficients(azimuth, elevation float64, order int) ([]float64, error) {
	if err := validateOrder(order); err != nil {
		return nil, fmt.Errorf("Coefficients: %w", err)
	}
	if err := validateAngle("azimuth", azimuth); err != nil {
		return nil, fmt.Errorf("Coefficients: %w", err)
	}
	if err := validateAngle("elevation", elevation); err != nil {
		return nil, fmt.Errorf("Coefficients: %w", err)
	}
	out := make([]float64, 0, (order+1)*(order+1))
	for l := 0; l <= order; l++ {
		for m := -l; m <= l; m++ {
			out = append(out, sn3d(azimuth, elevation, l, m))
		}
	}
	return out, nil
}

// Gains returns the encoding gains of a spread source: the point-source
// coefficients multiplied channel-wise by SpreadCoefficients(alpha, tau, order).
func Gains(dir spherical.Direction, alpha, tau float64, order int) ([]float64, error) {
	coefs, err := Coefficients(dir.Azimuth, dir.Elevation, order)
	if err != nil {
		return nil, fmt.Errorf("Gains: %w", err)
	}
	spread, err := SpreadCoefficients(alpha, tau, order)
	if err != nil {
		return nil, fmt.Errorf("Gains: %w", err)
	}
	for i := range coefs {
		coefs[i] *= spread[i]
	}
	return coefs, nil
}

// EncodingMatrix stacks Coefficients for each direction: one row per
// direction, one column per ACN channel.
//
// Errors: matrix.ErrInvalidDimensions for no directions, plus Coefficients errors.
// Complexity: O(len(dirs)·order³).
func EncodingMatrix(dirs []spherical.Direction, order int) (*matrix.Dense, error) {
	n, err := ChannelCount(order)
	if err != nil {
		return nil, fmt.Errorf("EncodingMatrix: %w", err)
	}
	m, err := matrix.NewDense(len(dirs), n)
	if err != nil {
		return nil, fmt.Errorf("EncodingMatrix: %w", err)
	}
	for i, d := range dirs {
		row, err := Coefficients(d.Azimuth, d.Elevation, order)
		if err != nil {
			return nil, fmt.Errorf("EncodingMatrix: direction %d: %w", i, err)
		}
		if err = m.SetRow(i, row); err != nil {
			return nil, fmt.Errorf("EncodingMatrix: %w", err)
		}
	}
	return m, nil
}
