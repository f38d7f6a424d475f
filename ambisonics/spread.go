// SPDX-License-Identifier: MIT

package ambisonics

import (
	"fmt"
	"math"
)

// DefaultTau is the spread steepness used when callers have no preference.
const DefaultTau = 1.0

// tauScale stretches tau so that tau=1 gives a near-step transition between orders.
const tauScale = 100.0

// SpreadCoefficients returns the (order+1)² blur gains for spread alpha and
// steepness tau. The gain of degree l is repeated for its 2l+1 channels.
//
// alpha=0 leaves every order untouched (gains ≈ 1 for tau near 1); larger
// alpha suppresses high orders first and alpha=1 keeps only order 0.
//
// Errors: ErrInvalidSpread, ErrInvalidOrder.
// Complexity: O(order²).
func SpreadCoefficients(alpha, tau float64, order int) ([]float64, error) {
	if err := validateSpread("alpha", alpha); err != nil {
		return nil, fmt.Errorf("SpreadCoefficients: %w", err)
	}
	if err := validateSpread("tau", tau); err != nil {
		return nil, fmt.Errorf("SpreadCoefficients: %w", err)
	}
	if err := validateOrder(order); err != nil {
		return nil, fmt.Errorf("SpreadCoefficients: %w", err)
	}

	w := math.Sqrt(energySum(0, tau, order) / energySum(alpha, tau, order))
	out := make([]float64, 0, (order+1)*(order+1))
	for l := 0; l <= order; l++ {
		g := spreadGain(alpha, tau, l, order) * w
		for k := 0; k < 2*l+1; k++ {
			out = append(out, g)
		}
	}
	return out, nil
}

// EnergySum returns Σ_l sqrt(2l+1)·g_l² for a per-channel gain vector laid
// out as returned by SpreadCoefficients, using the first channel of each order.
func EnergySum(gains []float64) float64 {
	var e float64
	for l := 0; l*l < len(gains); l++ {
		g := gains[l*l]
		e += math.Sqrt(float64(2*l+1)) * g * g
	}
	return e
}

// spreadGain is the logistic per-order attenuation.
func spreadGain(alpha, tau float64, l, order int) float64 {
	x := alpha - float64(order-l+1)/float64(order+1)
	return 1 - 1/(1+math.Exp(-tau*tauScale*x))
}

// energySum is the SN3D energy of the per-order gains.
func energySum(alpha, tau float64, order int) float64 {
	var e float64
	for l := 0; l <= order; l++ {
		g := spreadGain(alpha, tau, l, order)
		e += math.Sqrt(float64(2*l+1)) * g * g
	}
	return e
}

func validateSpread(name string, x float64) error {
	if math.IsNaN(x) || x < 0 || x > 1 {
		return fmt.Errorf("%s=%v: %w", name, x, ErrInvalidSpread)
	}
	return nil
}
