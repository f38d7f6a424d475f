// SPDX-License-Identifier: MIT

// Package distribution provides declarative distribution descriptors, a
// seeded sampler, and per-field domain validators.
//
// A descriptor is a closed sum type with one variant per kind:
//
//	Const[T]{Value}                      - always Value
//	Choose[T]{Values}                    - uniform pick from Values
//	Uniform{Min, Max}                    - U[Min, Max)
//	Normal{Mean, Std}                    - N(Mean, Std²)
//	TruncNorm{Mean, Std, Min, Max}       - N(Mean, Std²) truncated to [Min, Max]
//
// Continuous variants only implement Dist[float64], so a Dist[string] can never
// carry a Uniform. Validate checks the descriptor shape, Sample draws one value.
//
// Domain describes the physical range of a semantic field (time, duration,
// azimuth, ...). Domain.Check rejects descriptors that always produce values
// outside the range (ErrInvalidFieldValue) and returns a Warning for normal
// descriptors on bounded domains, which may produce such values. Sampled
// values are never re-drawn.
//
// Determinism:
//   - All randomness flows through a *Sampler wrapping one *rand.Rand.
//   - NewSampler(0) uses a fixed default seed.
//   - Derive creates independent streams for parallel scene generation.
//
// A *Sampler is NOT safe for concurrent use.
package distribution
