// SPDX-License-Identifier: MIT

// Package event models sound-event templates and resolves them into concrete
// events.
//
// A Spec holds one distribution descriptor per field. Spec.Validate applies
// the shared field domains of package distribution; Instantiator.Instantiate
// draws every field once, in a fixed order, from a caller-owned Sampler:
//
//	source file, source time, event time, duration, azimuth, elevation,
//	spread, SNR, pitch shift, time stretch
//
// Draws are never repeated to satisfy a domain. Timing overruns (event longer
// than its source, event ending after the scene) are reported as warnings and
// left to the renderer, which trims or pads.
//
// Identifiers follow the fg<N>/bg<N> convention, N being the zero-based
// position of the event within its role.
package event
