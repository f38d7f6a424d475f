// SPDX-License-Identifier: MIT

package spherical

import "errors"

var (
	// ErrDegenerateVector is returned for the zero vector or non-finite input.
	ErrDegenerateVector = errors.New("spherical: degenerate vector")

	// ErrNoCandidates is returned when a nearest-neighbour query has no candidates.
	ErrNoCandidates = errors.New("spherical: no candidate directions")

	// ErrUnknownCriterion is returned for a Criterion outside the defined set.
	ErrUnknownCriterion = errors.New("spherical: unknown criterion")
)
