// SPDX-License-Identifier: MIT

// Package ambisonics computes spherical-harmonic encoding gains.
//
// Channel layout: for order L there are (L+1)² channels in ACN order, i.e.
// degree l from 0 to L and, within each degree, index m from -l to l.
// ACN(l, m) = l² + l + m.
//
// Normalization: SN3D. The gain of channel (l, m) at azimuth φ and elevation θ
// is
//
//	sqrt((2-δ(m,0)) (l-|m|)!/(l+|m|)!) · P_l^|m|(sin θ) · { cos(mφ)   m ≥ 0
//	                                                      { sin(|m|φ) m < 0
//
// with P the associated Legendre function without Condon–Shortley phase.
// It is obtained from the physics-normalized complex harmonic, which carries
// that phase, by dividing out its normalization and multiplying by
// (-1)^|m| times the SN3D factor. The phase is therefore applied once.
//
// Spread: SpreadCoefficients implements the per-order spatial blur of
// Carpentier ("Ambisonic Spatial Blur", AES 2017): a logistic gain per order,
// renormalized so the SN3D energy sum does not depend on alpha.
package ambisonics
