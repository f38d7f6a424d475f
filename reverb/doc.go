// SPDX-License-Identifier: MIT

// Package reverb resolves reverb descriptors into concrete convolution
// parameters.
//
// Two variants exist and exactly one may be active per scene:
//
//   - SimulatedSpec describes a shoebox room rendered by a spherical
//     microphone impulse-response generator: IR length, room sides, either a
//     decay time (T60) or six wall reflectivities, source directivity and a
//     virtual microphone array.
//   - MeasuredSpec names a recorded impulse-response set from a
//     catalog.Reverbs and a wrap policy that maps arbitrary event directions
//     onto its fixed loudspeaker directions.
//
// The constant tables (microphone arrays, directivity codes, generator
// constants) are plain values injected into a Resolver with options.
package reverb
