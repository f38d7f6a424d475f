// SPDX-License-Identifier: MIT

package distribution

import "gonum.org/v1/gonum/stat/distuv"

// truncNormInv maps u ∈ [0,1) to a N(mean, std²) value truncated to [lo, hi]
// by inverting the CDF on [Φ(a), Φ(b)], with a and b the standardized bounds.
//
// When both bounds lie in the right tail the problem is mirrored into the left
// tail, where Φ keeps its precision. std == 0 degenerates to clamp(mean).
//
// Complexity: O(1).
func truncNormInv(mean, std, lo, hi, u float64) float64 {
	if std == 0 || lo == hi {
		return clamp(mean, lo, hi)
	}
	a := (lo - mean) / std
	b := (hi - mean) / std

	flip := a > 0
	if flip {
		a, b = -b, -a
	}
	pa, pb := distuv.UnitNormal.CDF(a), distuv.UnitNormal.CDF(b)
	if pb <= pa {
		// Both bounds sit where Φ has no resolution left.
		return clamp(mean, lo, hi)
	}
	z := distuv.UnitNormal.Quantile(pa + u*(pb-pa))
	if flip {
		z = -z
	}
	return clamp(mean+std*z, lo, hi)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
