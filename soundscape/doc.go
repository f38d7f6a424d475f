// SPDX-License-Identifier: MIT

// Package soundscape assembles background events, foreground events and an
// optional reverb into one reproducible scene description.
//
// A Soundscape collects templates (AddBackground, AddEvent, Set*Reverb) and
// Generate resolves all of them from a single Sampler in a fixed order:
//
//  1. background events, in declaration order;
//  2. foreground events, in declaration order;
//  3. the reverb;
//  4. the scene UUID, drawn from the same Sampler.
//
// Equal seeds and equal templates therefore give byte-identical JSON.
//
// Background events always play from time 0 for the whole scene and carry
// spread 1: their energy lives in the omnidirectional channel only.
//
// Generate opens an OpenTelemetry span, counts scenes and warnings, and logs
// each warning through log/slog (an otelslog bridge unless WithLogger is given).
package soundscape
