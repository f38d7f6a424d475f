// SPDX-License-Identifier: MIT

package ambisonics

import "errors"

var (
	// ErrInvalidOrder is returned for a negative ambisonics order.
	ErrInvalidOrder = errors.New("ambisonics: order must be >= 0")

	// ErrInvalidDegree is returned when |m| exceeds the order l.
	ErrInvalidDegree = errors.New("ambisonics: |degree| must not exceed order")

	// ErrInvalidChannel is returned for a negative ACN channel number.
	ErrInvalidChannel = errors.New("ambisonics: channel number must be >= 0")

	// ErrInvalidAngle is returned for NaN or infinite angles.
	ErrInvalidAngle = errors.New("ambisonics: angle must be a finite real number")

	// ErrInvalidSpread is returned when alpha or tau fall outside [0, 1].
	ErrInvalidSpread = errors.New("ambisonics: spread parameter must be in [0, 1]")
)
