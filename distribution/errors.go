// SPDX-License-Identifier: MIT
// Package distribution: sentinel error set.
// Callers match with errors.Is; call sites wrap with method context.

package distribution

import "errors"

var (
	// ErrInvalidDistribution is returned when a descriptor has the wrong shape
	// or inconsistent arguments (min > max, negative std, empty choose on draw).
	ErrInvalidDistribution = errors.New("distribution: invalid distribution")

	// ErrInvalidFieldValue is returned when a descriptor is well-formed but can
	// only produce values outside the physical domain of its field.
	ErrInvalidFieldValue = errors.New("distribution: invalid field value")
)
