// SPDX-License-Identifier: MIT

// Package spherical holds the coordinate conventions shared by the encoder and
// the reverb resolver.
//
// Convention (right-handed, radians):
//   - azimuth 0 is +X, azimuth π/2 is +Y, counter-clockwise seen from +Z;
//   - elevation 0 is the horizontal plane, elevation π/2 is +Z.
//
// Closest maps a continuous direction onto a finite set of candidate
// directions using one of three angular criteria.
package spherical
