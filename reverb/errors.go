// SPDX-License-Identifier: MIT

package reverb

import "errors"

var (
	// ErrConflictingSpec is returned when neither T60 nor reflectivity is set.
	ErrConflictingSpec = errors.New("reverb: conflicting specification")

	// ErrUnknownSpec is returned for a nil or foreign Spec value.
	ErrUnknownSpec = errors.New("reverb: unknown spec type")

	// ErrUnknownWrap is returned for a wrap policy outside the supported set.
	ErrUnknownWrap = errors.New("reverb: unknown wrap policy")

	// ErrOrderUnsupported is returned when a scene order exceeds what the
	// reverb can carry.
	ErrOrderUnsupported = errors.New("reverb: ambisonics order not supported")
)
